package models

// SnarkStatus is a point-in-time snapshot of a SNARK-wrapping job. It mirrors
// [SessionStatus] except that a finished job exposes its artifact through
// Output rather than a receipt URL.
type SnarkStatus struct {
	// Status is one of the Status* constants.
	Status string `json:"status"`

	// Output is the presigned download URL for the wrapped SNARK proof,
	// present when Status is SUCCEEDED.
	Output string `json:"output,omitempty"`

	// ErrorMsg describes why the job failed, when it did.
	ErrorMsg string `json:"error_msg,omitempty"`
}

// Done reports whether the SNARK job has reached a terminal state.
func (s SnarkStatus) Done() bool {
	return s.Status != StatusRunning
}
