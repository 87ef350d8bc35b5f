package models

// VersionInfo lists the protocol versions the server currently supports.
type VersionInfo struct {
	// RiscZeroZKVM is the list of supported risc0 zkVM version strings.
	RiscZeroZKVM []string `json:"risc0_zkvm"`
}
