package models

// QuotaSnapshot carries the account-level limits and usage counters reported
// by the server. It is fetched on demand and never cached by the client.
type QuotaSnapshot struct {
	// ExecCycleLimit is the per-session execution cycle limit, in
	// millions of cycles.
	ExecCycleLimit int64 `json:"exec_cycle_limit"`

	// MaxParallelism is the maximum number of proving workers the
	// account may occupy at once.
	MaxParallelism int64 `json:"max_parallelism"`

	// ConcurrentProofs is the maximum number of proofs that may be in
	// flight concurrently.
	ConcurrentProofs int64 `json:"concurrent_proofs"`

	// CycleBudget is the remaining cycle allowance for the account.
	CycleBudget int64 `json:"cycle_budget"`

	// CycleUsage is the number of cycles the account has consumed.
	CycleUsage int64 `json:"cycle_usage"`

	// DedicatedExecutor reports whether the account has a dedicated
	// executor reserved.
	DedicatedExecutor bool `json:"dedicated_executor"`

	// DedicatedGPU reports whether the account has a dedicated GPU
	// prover reserved.
	DedicatedGPU bool `json:"dedicated_gpu"`
}
