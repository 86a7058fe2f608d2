// Package manager owns the lifecycle of the served model. It is structured
// into small files by concern:
//
//   - manager.go: Manager type, Load (the one-time startup load) and queries.
//   - config.go: ManagerConfig and package defaults.
//   - types.go: Handle, State and Snapshot.
//   - errors.go: error types and helpers (IsModelUnavailable, IsLoadFailure).
//   - predict.go: Predict, the per-request entry point.
//   - events.go: lifecycle event publishing.
//   - metrics.go: Prometheus gauges describing the load outcome.
//
// Load runs exactly once, before the HTTP server accepts connections, and
// produces an immutable Handle. Nothing mutates a Manager after Load returns,
// so concurrent request handlers read it without locking. A failed load is
// recorded rather than returned: the process keeps serving /health and
// /model-info so operators can see why the model is missing.
package manager
