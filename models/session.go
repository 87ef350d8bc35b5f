package models

// Session status values reported by the proving service. The status field of
// a [SessionStatus] snapshot always carries one of these strings.
const (
	// StatusRunning means the job is still being executed or proved.
	StatusRunning = "RUNNING"

	// StatusSucceeded means the job finished and its artifact is ready.
	StatusSucceeded = "SUCCEEDED"

	// StatusFailed means the job failed; ErrorMsg carries the reason.
	StatusFailed = "FAILED"

	// StatusTimedOut means the job exceeded the server-side time limit.
	StatusTimedOut = "TIMED_OUT"

	// StatusAborted means the job was stopped before completion.
	StatusAborted = "ABORTED"
)

// SessionStats carries execution statistics for a proving session. It is
// only populated once the server has finished executing the guest program.
type SessionStats struct {
	// Segments is the number of continuation segments the execution was
	// split into.
	Segments int `json:"segments"`

	// TotalCycles is the total number of zkVM cycles spent, including
	// paging and system overhead.
	TotalCycles uint64 `json:"total_cycles"`

	// Cycles is the number of user cycles executed by the guest program.
	Cycles uint64 `json:"cycles"`
}

// SessionStatus is a point-in-time snapshot of a proving session as reported
// by the server. Every call to Session.Status re-fetches a fresh snapshot;
// nothing is cached client-side.
//
// The server is expected to populate ReceiptURL only when Status is
// SUCCEEDED and ErrorMsg only when the session ended unsuccessfully. The
// client does not enforce this — the snapshot is surfaced exactly as sent.
type SessionStatus struct {
	// Status is one of the Status* constants above.
	Status string `json:"status"`

	// ReceiptURL is the presigned download URL for the receipt produced
	// by a successful session.
	ReceiptURL string `json:"receipt_url,omitempty"`

	// ErrorMsg describes why the session failed, timed out, or aborted.
	ErrorMsg string `json:"error_msg,omitempty"`

	// State is a free-text label for the current proving stage.
	State string `json:"state,omitempty"`

	// ElapsedTime is the number of seconds the session has been running.
	ElapsedTime float64 `json:"elapsed_time,omitempty"`

	// Stats holds execution statistics, present once execution completed.
	Stats *SessionStats `json:"stats,omitempty"`
}

// Done reports whether the session has reached a terminal state, i.e. any
// status other than RUNNING.
func (s SessionStatus) Done() bool {
	return s.Status != StatusRunning
}
