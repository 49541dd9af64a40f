package sync

import (
	"time"

	"github.com/erp/companion/internal/domain/record"
)

// Failure describes one record that could not be pushed. Reference is the
// human-readable document number for display in the UI.
type Failure struct {
	EntityType record.EntityType `json:"entity_type"`
	LocalID    uint              `json:"local_id"`
	Reference  string            `json:"reference"`
	Error      string            `json:"error"`
}

// PushSummary reports the outcome of one push pass. Rows are attempted
// independently; a failed row never blocks the rest.
type PushSummary struct {
	Attempted int           `json:"attempted"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Failures  []Failure     `json:"failures,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// AllSucceeded returns true when no attempted row failed
func (s *PushSummary) AllSucceeded() bool {
	return s.Failed == 0
}

// PullSummary reports the outcome of one pull pass. Skipped counts remote
// records whose server ID already existed locally; those local rows are
// left untouched (local-wins).
type PullSummary struct {
	Fetched   int           `json:"fetched"`
	Inserted  int           `json:"inserted"`
	Skipped   int           `json:"skipped"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// Summary is the combined result of a full sync pass (push, then pull)
type Summary struct {
	Push     *PushSummary `json:"push"`
	Pull     *PullSummary `json:"pull"`
	LastSync time.Time    `json:"last_sync"`
}
