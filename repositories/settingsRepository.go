package repositories

import (
	"CareLedger/cache"
	"CareLedger/database"
	"CareLedger/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	SettingsCacheExpiry = 7 * 24 * time.Hour
)

type SettingsRepository struct {
	cache *cache.Cache
}

func NewSettingsRepository(cache *cache.Cache) *SettingsRepository {
	return &SettingsRepository{cache: cache}
}

func (r *SettingsRepository) GetAll(ctx context.Context) ([]models.Setting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedSettings, err := r.cache.Get(ctx, "settings_cache")
	if err == nil && cachedSettings != "" {
		var settings []models.Setting
		if err := json.Unmarshal([]byte(cachedSettings), &settings); err == nil {
			return settings, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get settings from cache: %v", err)
	}

	var settings []models.Setting
	if err := database.DB.Order("setting_key ASC").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := r.cache.Set(ctx, "settings_cache", settingsJSON, SettingsCacheExpiry); err != nil {
		log.Printf("Failed to set settings in cache: %v", err)
	}

	return settings, nil
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (*models.Setting, error) {
	var setting models.Setting
	err := database.DB.First(&setting, "setting_key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return &setting, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, setting *models.Setting) error {
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
	}).Create(setting).Error
	if err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return r.cache.Delete(ctx, "settings_cache")
}
