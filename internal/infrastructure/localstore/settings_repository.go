package localstore

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/erp/companion/internal/domain/record"
	"github.com/erp/companion/internal/domain/shared"
)

// Setting is one row of the local key/value settings table
type Setting struct {
	Key       string    `gorm:"primaryKey;size:100"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName overrides the table name
func (Setting) TableName() string {
	return "settings"
}

// GormSettingsRepository implements record.SettingsRepository using GORM
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get returns the value stored under key, or shared.ErrNotFound
func (r *GormSettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var setting Setting
	if err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error; err != nil {
		return "", wrapErr(err)
	}
	return setting.Value, nil
}

// Set stores value under key, inserting or updating as needed
func (r *GormSettingsRepository) Set(ctx context.Context, key, value string) error {
	setting := Setting{Key: key, Value: value, UpdatedAt: time.Now()}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
	return wrapErr(err)
}

// Snapshot reads the user-editable sync settings as one immutable value.
// Missing keys fall back to defaults: sync enabled, any connectivity,
// empty API URL, never synced.
func (r *GormSettingsRepository) Snapshot(ctx context.Context) (record.Settings, error) {
	settings := record.Settings{
		SyncEnabled: true,
	}

	apiURL, err := r.Get(ctx, record.SettingKeyAPIURL)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return record.Settings{}, err
	}
	settings.APIURL = apiURL

	if raw, err := r.Get(ctx, record.SettingKeySyncEnabled); err == nil {
		if enabled, parseErr := strconv.ParseBool(raw); parseErr == nil {
			settings.SyncEnabled = enabled
		}
	} else if !errors.Is(err, shared.ErrNotFound) {
		return record.Settings{}, err
	}

	if raw, err := r.Get(ctx, record.SettingKeyWifiOnlySync); err == nil {
		if wifiOnly, parseErr := strconv.ParseBool(raw); parseErr == nil {
			settings.WifiOnlySync = wifiOnly
		}
	} else if !errors.Is(err, shared.ErrNotFound) {
		return record.Settings{}, err
	}

	if raw, err := r.Get(ctx, record.SettingKeyLastSync); err == nil {
		if t, parseErr := time.Parse(time.RFC3339, raw); parseErr == nil {
			settings.LastSync = &t
		}
	} else if !errors.Is(err, shared.ErrNotFound) {
		return record.Settings{}, err
	}

	return settings, nil
}

// SetLastSync records the completion time of the latest successful sync
// pass
func (r *GormSettingsRepository) SetLastSync(ctx context.Context, t time.Time) error {
	return r.Set(ctx, record.SettingKeyLastSync, t.UTC().Format(time.RFC3339))
}

// Ensure GormSettingsRepository implements record.SettingsRepository
var _ record.SettingsRepository = (*GormSettingsRepository)(nil)
