package domain

// FailureReason tags why a sync with Google did not produce a remote link.
// Callers inspect it instead of a bare nil so the primary write can proceed
// with an informed (logged) decision.
type FailureReason string

const (
	FailureNone         FailureReason = ""
	FailureNotConnected FailureReason = "not_connected"
	FailureUnavailable  FailureReason = "integration_unavailable"
	FailureProvider     FailureReason = "provider_error"
)

// SyncResult is the outcome of a Drive upload or Calendar event creation.
// On success RemoteID/Link are set and Failure is empty.
type SyncResult struct {
	RemoteID string
	Link     string
	Failure  FailureReason
	Err      error // underlying cause, for logging only
}

func (r *SyncResult) OK() bool {
	return r != nil && r.Failure == FailureNone
}
