package cache

import (
	"context"
	"net/url"
	"strconv"

	"github.com/erp/companion/internal/domain/record"
	"github.com/erp/companion/internal/domain/shared"
)

// SettingsService handles the user-editable sync settings. Edits take
// effect on the next sync invocation; a pass already in flight keeps the
// snapshot it started with.
type SettingsService struct {
	settingsRepo record.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo record.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get retrieves the current settings snapshot
func (s *SettingsService) Get(ctx context.Context) (*SettingsResponse, error) {
	snapshot, err := s.settingsRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	response := ToSettingsResponse(snapshot)
	return &response, nil
}

// Update applies the non-nil fields of the request and returns the
// resulting snapshot
func (s *SettingsService) Update(ctx context.Context, req UpdateSettingsRequest) (*SettingsResponse, error) {
	if req.APIURL != nil {
		if err := validateAPIURL(*req.APIURL); err != nil {
			return nil, err
		}
		if err := s.settingsRepo.Set(ctx, record.SettingKeyAPIURL, *req.APIURL); err != nil {
			return nil, err
		}
	}
	if req.SyncEnabled != nil {
		if err := s.settingsRepo.Set(ctx, record.SettingKeySyncEnabled, strconv.FormatBool(*req.SyncEnabled)); err != nil {
			return nil, err
		}
	}
	if req.WifiOnlySync != nil {
		if err := s.settingsRepo.Set(ctx, record.SettingKeyWifiOnlySync, strconv.FormatBool(*req.WifiOnlySync)); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx)
}

func validateAPIURL(raw string) error {
	if raw == "" {
		return nil
	}
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return shared.NewDomainError("INVALID_API_URL", "API URL must be an http(s) URL")
	}
	return nil
}
