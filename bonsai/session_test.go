package bonsai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkworks/bonsai-go/models"
)

// ── CreateSession ───────────────────────────────────────────────────────────

func TestCreateSession_PostsProofRequest(t *testing.T) {
	sessionID := uuid.NewString()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sessions/create", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req map[string]any
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "img-1", req["img"])
		assert.Equal(t, "input-1", req["input"])
		assert.Equal(t, []any{"assump-1"}, req["assumptions"])
		assert.Equal(t, false, req["execute_only"])
		assert.NotContains(t, req, "exec_cycle_limit")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.JobCreated{UUID: sessionID})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	session, err := c.CreateSession(context.Background(), "img-1", "input-1", []string{"assump-1"}, false)

	require.NoError(t, err)
	assert.Equal(t, sessionID, session.ID)
	assert.Equal(t, sessionID, session.String())
}

func TestCreateSession_NilAssumptionsMarshalAsEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req map[string]any
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, []any{}, req["assumptions"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.JobCreated{UUID: uuid.NewString()})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.CreateSession(context.Background(), "img-1", "input-1", nil, true)

	require.NoError(t, err)
}

func TestCreateSessionWithLimit_IncludesCycleLimit(t *testing.T) {
	limit := uint64(128)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req map[string]any
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, float64(128), req["exec_cycle_limit"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.JobCreated{UUID: uuid.NewString()})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.CreateSessionWithLimit(context.Background(), "img-1", "input-1", nil, false, &limit)

	require.NoError(t, err)
}

func TestCreateSession_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("unknown image id"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.CreateSession(context.Background(), "img-x", "input-1", nil, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)
	assert.Contains(t, err.Error(), "unknown image id")
}

// ── Status ──────────────────────────────────────────────────────────────────

func TestSessionStatus_PollingSequence(t *testing.T) {
	sessionID := uuid.NewString()
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sessions/status/"+sessionID, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		if calls.Add(1) == 1 {
			_ = json.NewEncoder(w).Encode(models.SessionStatus{Status: models.StatusRunning, State: "Executor", ElapsedTime: 3.5})
			return
		}
		_ = json.NewEncoder(w).Encode(models.SessionStatus{
			Status:     models.StatusSucceeded,
			ReceiptURL: "https://receipts.example/r1",
			Stats:      &models.SessionStats{Segments: 4, TotalCycles: 1 << 20, Cycles: 1 << 19},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	session := c.SessionHandle(sessionID)

	first, err := session.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, first.Status)
	assert.False(t, first.Done())
	assert.Empty(t, first.ReceiptURL)
	assert.Equal(t, "Executor", first.State)
	assert.InDelta(t, 3.5, first.ElapsedTime, 0.001)

	second, err := session.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.StatusSucceeded, second.Status)
	assert.True(t, second.Done())
	assert.Equal(t, "https://receipts.example/r1", second.ReceiptURL)
	require.NotNil(t, second.Stats)
	assert.Equal(t, 4, second.Stats.Segments)
}

func TestSessionStatus_FailedExposesErrorMsg(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SessionStatus{Status: models.StatusFailed, ErrorMsg: "guest panicked"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	status, err := c.SessionHandle(uuid.NewString()).Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, status.Status)
	assert.True(t, status.Done())
	assert.Equal(t, "guest panicked", status.ErrorMsg)
	assert.Empty(t, status.ReceiptURL)
}

func TestSessionStatus_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad api key"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.SessionHandle(uuid.NewString()).Status(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)
}

// ── Logs / Stop / ExecOnlyJournal ───────────────────────────────────────────

func TestSessionLogs_ReturnsRawText(t *testing.T) {
	sessionID := uuid.NewString()
	logs := "segment 0 done\nsegment 1 done\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sessions/logs/"+sessionID, r.URL.Path)
		_, _ = w.Write([]byte(logs))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.SessionHandle(sessionID).Logs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, logs, got)
}

func TestSessionStop(t *testing.T) {
	sessionID := uuid.NewString()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/sessions/stop/"+sessionID, r.URL.Path)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.SessionHandle(sessionID).Stop(context.Background())

	require.NoError(t, err)
}

func TestExecOnlyJournal_ReturnsBinaryBody(t *testing.T) {
	sessionID := uuid.NewString()
	journal := []byte{0x01, 0x00, 0xff, 0x7f}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sessions/exec_only_journal/"+sessionID, r.URL.Path)
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(journal)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.SessionHandle(sessionID).ExecOnlyJournal(context.Background())

	require.NoError(t, err)
	assert.Equal(t, journal, got)
}
