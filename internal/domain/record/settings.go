package record

import (
	"context"
	"time"
)

// Setting keys persisted in the local key/value table
const (
	SettingKeyAPIURL       = "api_url"
	SettingKeySyncEnabled  = "sync_enabled"
	SettingKeyWifiOnlySync = "wifi_only_sync"
	SettingKeyLastSync     = "last_sync"
)

// Settings is an immutable snapshot of the user-editable sync settings.
// The sync engine reads one snapshot at the start of each invocation and
// never observes later edits mid-pass.
type Settings struct {
	APIURL       string     `json:"api_url"`
	SyncEnabled  bool       `json:"sync_enabled"`
	WifiOnlySync bool       `json:"wifi_only_sync"`
	LastSync     *time.Time `json:"last_sync,omitempty"`
}

// SettingsRepository defines persistence operations for the key/value
// settings table. Get returns shared.ErrNotFound for an absent key.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Snapshot(ctx context.Context) (Settings, error)
	SetLastSync(ctx context.Context, t time.Time) error
}
