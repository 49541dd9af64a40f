package record

import (
	"time"

	"github.com/google/uuid"

	"github.com/erp/companion/internal/domain/shared"
)

// SyncStatus marks whether a local record has been pushed to the remote
// store
type SyncStatus string

const (
	// SyncStatusPending indicates the record has local changes not yet pushed
	SyncStatusPending SyncStatus = "PENDING"
	// SyncStatusSynced indicates the record matches what the server has seen
	SyncStatusSynced SyncStatus = "SYNCED"
)

// IsValid checks if the status is a valid SyncStatus
func (s SyncStatus) IsValid() bool {
	switch s {
	case SyncStatusPending, SyncStatusSynced:
		return true
	}
	return false
}

// String returns the string representation of SyncStatus
func (s SyncStatus) String() string {
	return string(s)
}

// EntityType identifies a syncable entity collection. The value doubles as
// the remote API path segment for that collection.
type EntityType string

const (
	EntityTypeSalesOrder EntityType = "SalesOrders"
	EntityTypeQuote      EntityType = "Quotes"
	EntityTypeWorkOrder  EntityType = "WorkOrders"
)

// String returns the string representation of EntityType
func (t EntityType) String() string {
	return string(t)
}

// PushOrder returns the syncable entity types in the fixed order the push
// pass processes them
func PushOrder() []EntityType {
	return []EntityType{EntityTypeSalesOrder, EntityTypeQuote, EntityTypeWorkOrder}
}

// SyncMeta carries the identity and sync bookkeeping shared by all
// syncable records. LocalID is assigned by the local store on insert;
// ServerID is assigned by the remote system on first successful push and
// is immutable afterwards.
type SyncMeta struct {
	LocalID    uint       `gorm:"primaryKey;autoIncrement" json:"local_id"`
	ServerID   *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"server_id,omitempty"`
	SyncStatus SyncStatus `gorm:"not null;default:'PENDING';index" json:"sync_status"`
	CreatedAt  time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt  *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
}

// NewSyncMeta returns metadata for a freshly created local record
func NewSyncMeta() SyncMeta {
	return SyncMeta{
		SyncStatus: SyncStatusPending,
		CreatedAt:  time.Now(),
	}
}

// NewSyncedMeta returns metadata for a record pulled from the remote store
func NewSyncedMeta(serverID uuid.UUID) SyncMeta {
	id := serverID
	return SyncMeta{
		ServerID:   &id,
		SyncStatus: SyncStatusSynced,
		CreatedAt:  time.Now(),
	}
}

// IsPending returns true if the record has unpushed local changes
func (m *SyncMeta) IsPending() bool {
	return m.SyncStatus == SyncStatusPending
}

// IsSynced returns true if the record has been pushed to the remote store
func (m *SyncMeta) IsSynced() bool {
	return m.SyncStatus == SyncStatusSynced
}

// MarkSynced records a successful push. The server ID may only be set
// once; a later push of the same record must carry the same ID.
func (m *SyncMeta) MarkSynced(serverID uuid.UUID) error {
	if serverID == uuid.Nil {
		return shared.NewDomainError("INVALID_SERVER_ID", "Server ID cannot be empty")
	}
	if m.ServerID != nil && *m.ServerID != serverID {
		return shared.NewDomainError("SERVER_ID_IMMUTABLE", "Server ID cannot change once assigned")
	}
	id := serverID
	m.ServerID = &id
	m.SyncStatus = SyncStatusSynced
	m.touch()
	return nil
}

// MarkPending flags the record for the next push pass
func (m *SyncMeta) MarkPending() {
	m.SyncStatus = SyncStatusPending
	m.touch()
}

func (m *SyncMeta) touch() {
	now := time.Now()
	m.UpdatedAt = &now
}
