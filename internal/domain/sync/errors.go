package sync

import (
	"errors"
	"fmt"
)

// Sentinel errors for the sync core. Callers classify failures with
// errors.Is/errors.As; transport and store failures wrap these so the
// original cause is preserved.
var (
	// ErrSyncUnavailable indicates the connectivity policy gate denied the
	// sync attempt (offline, cellular with wifi-only set, or sync disabled)
	ErrSyncUnavailable = errors.New("sync: unavailable under current connectivity policy")
	// ErrSyncInProgress indicates another sync pass is already running
	ErrSyncInProgress = errors.New("sync: a sync pass is already in progress")
	// ErrNetwork indicates a transport-level failure (dial, TLS, timeout)
	ErrNetwork = errors.New("sync: network failure")
	// ErrDecode indicates the remote response body could not be decoded
	ErrDecode = errors.New("sync: invalid remote response")
	// ErrLocalStore indicates a local cache read or write failed
	ErrLocalStore = errors.New("sync: local store failure")
)

// RemoteError is returned when the remote API answers with a non-2xx
// status code. The body is retained (truncated) for diagnostics.
type RemoteError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("sync: remote rejected request with HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("sync: remote rejected request with HTTP %d: %s", e.StatusCode, e.Body)
}

// NewRemoteError creates a RemoteError for a rejected request
func NewRemoteError(statusCode int, body string) *RemoteError {
	const maxBody = 512
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	return &RemoteError{StatusCode: statusCode, Body: body}
}
