// File: services/admin/settings.go
package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	settingsRepo "darsehha/database/repository/settings"
	"darsehha/models"
	"darsehha/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	settingsCacheKey = "settings:public"
	settingsCacheTTL = 5 * time.Minute
)

// SettingsService manages website settings: category-keyed documents with
// defaults for anything an admin has not saved yet.
type SettingsService struct {
	Repo  settingsRepo.SettingsRepository
	Cache *redis.Client
}

// Save stores one settings category and invalidates the public cache.
func (s *SettingsService) Save(ctx context.Context, category models.SettingsCategory) error {
	if err := s.Repo.Save(ctx, category); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	if s.Cache != nil {
		if err := s.Cache.Del(ctx, settingsCacheKey).Err(); err != nil {
			utils.GetLogger().Warn("Failed to invalidate settings cache", zap.Error(err))
		}
	}
	return nil
}

// Load returns all settings, with defaults filling any unsaved category.
func (s *SettingsService) Load(ctx context.Context) (map[string]map[string]string, error) {
	settings := models.DefaultSettings()

	stored, err := s.Repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	for _, cat := range stored {
		settings[cat.Category] = cat.Data
	}
	return settings, nil
}

// PublicSettings is Load behind a short-lived Redis cache; on any cache or
// storage failure it falls back to the defaults so the public site always
// renders.
func (s *SettingsService) PublicSettings(ctx context.Context) map[string]map[string]string {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, settingsCacheKey).Result(); err == nil {
			var cached map[string]map[string]string
			if json.Unmarshal([]byte(data), &cached) == nil {
				return cached
			}
		}
	}

	settings, err := s.Load(ctx)
	if err != nil {
		utils.GetLogger().Warn("Falling back to default settings", zap.Error(err))
		return models.DefaultSettings()
	}

	if s.Cache != nil {
		if data, err := json.Marshal(settings); err == nil {
			if err := s.Cache.Set(ctx, settingsCacheKey, data, settingsCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache settings", zap.Error(err))
			}
		}
	}
	return settings
}

// RetentionDays reads the configured data-retention window from the stored
// system settings, defaulting to 365 days when unset or unparsable.
func (s *SettingsService) RetentionDays(ctx context.Context) int {
	system, err := s.Repo.LoadCategory(ctx, "system-settings")
	if err != nil || system == nil {
		return 365
	}
	var days int
	if _, err := fmt.Sscanf(system.Data["dataRetention"], "%d", &days); err != nil || days <= 0 {
		return 365
	}
	return days
}
