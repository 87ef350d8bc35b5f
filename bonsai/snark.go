package bonsai

import (
	"context"
	"fmt"

	"github.com/zkworks/bonsai-go/models"
)

// Snark is an opaque handle for a server-side SNARK-wrapping job derived
// from a completed session. Like [Session], it carries only the identifier
// and queries the server on demand.
type Snark struct {
	// ID is the server-issued UUID of the SNARK job.
	ID string

	client *Client
}

// CreateSnark schedules a job wrapping the proof of a completed session
// into a SNARK.
func (c *Client) CreateSnark(ctx context.Context, sessionID string) (*Snark, error) {
	var created models.JobCreated

	resp, err := c.api.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SnarkRequest{SessionID: sessionID}).
		SetResult(&created).
		Post("/snark/create")
	if err != nil {
		return nil, fmt.Errorf("create snark request: %w", err)
	}
	if err = mapServerError(resp, nil); err != nil {
		return nil, err
	}

	c.logger.Debug().Str("snark", created.UUID).Str("session", sessionID).Msg("snark job created")
	return &Snark{ID: created.UUID, client: c}, nil
}

// SnarkHandle rebuilds a handle from a known SNARK job UUID.
func (c *Client) SnarkHandle(id string) *Snark {
	return &Snark{ID: id, client: c}
}

// Status fetches a fresh status snapshot for the SNARK job.
func (s *Snark) Status(ctx context.Context) (models.SnarkStatus, error) {
	var status models.SnarkStatus

	resp, err := s.client.api.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/snark/status/" + s.ID)
	if err != nil {
		return models.SnarkStatus{}, fmt.Errorf("snark status request: %w", err)
	}
	if err = mapServerError(resp, nil); err != nil {
		return models.SnarkStatus{}, err
	}

	return status, nil
}

// String returns the SNARK job UUID.
func (s *Snark) String() string {
	return s.ID
}
