package bonsai

import (
	"context"
	"fmt"

	"github.com/zkworks/bonsai-go/models"
)

// Session is an opaque handle for a server-side proof-generation job. It
// carries only the job identifier; every query re-fetches from the server
// through the client that created the handle. The server owns the job
// lifecycle — handles are never destroyed client-side.
type Session struct {
	// ID is the server-issued UUID of the session.
	ID string

	client *Client
}

// CreateSession schedules a proving session for a previously uploaded image
// and input. assumptions is the ordered list of receipt identifiers the
// guest verifies during execution; executeOnly requests execution without
// proving (the session then yields only a journal).
func (c *Client) CreateSession(ctx context.Context, imageID, inputID string, assumptions []string, executeOnly bool) (*Session, error) {
	return c.CreateSessionWithLimit(ctx, imageID, inputID, assumptions, executeOnly, nil)
}

// CreateSessionWithLimit is [Client.CreateSession] with an optional
// execution cycle limit, in millions of cycles. A nil limit is omitted from
// the request and the account default applies.
func (c *Client) CreateSessionWithLimit(ctx context.Context, imageID, inputID string, assumptions []string, executeOnly bool, execCycleLimit *uint64) (*Session, error) {
	if assumptions == nil {
		assumptions = []string{}
	}
	req := models.ProofRequest{
		Img:            imageID,
		Input:          inputID,
		Assumptions:    assumptions,
		ExecuteOnly:    executeOnly,
		ExecCycleLimit: execCycleLimit,
	}

	var created models.JobCreated
	resp, err := c.api.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/sessions/create")
	if err != nil {
		return nil, fmt.Errorf("create session request: %w", err)
	}
	if err = mapServerError(resp, nil); err != nil {
		return nil, err
	}

	c.logger.Debug().Str("session", created.UUID).Str("image_id", imageID).Msg("session created")
	return &Session{ID: created.UUID, client: c}, nil
}

// SessionHandle rebuilds a handle from a known session UUID, e.g. one
// persisted by the caller across process restarts.
func (c *Client) SessionHandle(id string) *Session {
	return &Session{ID: id, client: c}
}

// Status fetches a fresh status snapshot for the session. The snapshot is
// returned exactly as the server sent it; optional-field invariants are not
// validated client-side.
func (s *Session) Status(ctx context.Context) (models.SessionStatus, error) {
	var status models.SessionStatus

	resp, err := s.client.api.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/sessions/status/" + s.ID)
	if err != nil {
		return models.SessionStatus{}, fmt.Errorf("session status request: %w", err)
	}
	if err = mapServerError(resp, nil); err != nil {
		return models.SessionStatus{}, err
	}

	return status, nil
}

// Logs fetches the raw execution log text for the session.
func (s *Session) Logs(ctx context.Context) (string, error) {
	resp, err := s.client.api.R().
		SetContext(ctx).
		Get("/sessions/logs/" + s.ID)
	if err != nil {
		return "", fmt.Errorf("session logs request: %w", err)
	}
	if err = mapServerError(resp, nil); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

// Stop asks the server to abort the session.
func (s *Session) Stop(ctx context.Context) error {
	resp, err := s.client.api.R().
		SetContext(ctx).
		Get("/sessions/stop/" + s.ID)
	if err != nil {
		return fmt.Errorf("session stop request: %w", err)
	}
	return mapServerError(resp, nil)
}

// ExecOnlyJournal fetches the binary journal produced by an execute-only
// session.
func (s *Session) ExecOnlyJournal(ctx context.Context) ([]byte, error) {
	resp, err := s.client.api.R().
		SetContext(ctx).
		Get("/sessions/exec_only_journal/" + s.ID)
	if err != nil {
		return nil, fmt.Errorf("session journal request: %w", err)
	}
	if err = mapServerError(resp, nil); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// String returns the session UUID.
func (s *Session) String() string {
	return s.ID
}
