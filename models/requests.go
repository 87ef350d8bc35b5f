package models

// ProofRequest is the body of a session-creation request.
type ProofRequest struct {
	// Img is the content-addressed identifier of the program image.
	Img string `json:"img"`

	// Input is the identifier of a previously uploaded input blob.
	Input string `json:"input"`

	// Assumptions is the ordered list of receipt identifiers the guest
	// execution assumes to be proven.
	Assumptions []string `json:"assumptions"`

	// ExecuteOnly requests execution without proving; the session then
	// yields only a journal.
	ExecuteOnly bool `json:"execute_only"`

	// ExecCycleLimit optionally caps execution, in millions of cycles.
	// Omitted from the request when nil.
	ExecCycleLimit *uint64 `json:"exec_cycle_limit,omitempty"`
}

// SnarkRequest is the body of a SNARK-creation request.
type SnarkRequest struct {
	// SessionID identifies the completed session whose proof should be
	// wrapped into a SNARK.
	SessionID string `json:"session_id"`
}

// JobCreated is the server's answer to a session- or SNARK-creation request.
type JobCreated struct {
	// UUID is the identifier of the newly scheduled job.
	UUID string `json:"uuid"`
}
