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
)

const (
	LeadCacheExpiry = 24 * time.Hour
)

type LeadRepository struct {
	cache *cache.Cache
}

func NewLeadRepository(cache *cache.Cache) *LeadRepository {
	return &LeadRepository{cache: cache}
}

func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	var existingLead models.Lead
	if err := database.DB.Where("phone = ? AND status NOT IN ('Converted', 'Closed')", lead.Phone).
		First(&existingLead).Error; err == nil {
		return errors.New("an open lead with the same phone already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for existing lead: %w", err)
	}

	if err := database.DB.Create(lead).Error; err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return r.cache.Delete(ctx, "leads_cache")
}

func (r *LeadRepository) GetAll(ctx context.Context, status string) ([]models.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if status == "" {
		cachedLeads, err := r.cache.Get(ctx, "leads_cache")
		if err == nil && cachedLeads != "" {
			var leads []models.Lead
			if err := json.Unmarshal([]byte(cachedLeads), &leads); err == nil {
				return leads, nil
			}
		} else if err != nil && err != redis.Nil {
			log.Printf("Failed to get leads from cache: %v", err)
		}
	}

	var leads []models.Lead
	query := database.DB.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}

	if status == "" {
		leadsJSON, err := json.Marshal(leads)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal leads: %w", err)
		}
		if err := r.cache.Set(ctx, "leads_cache", leadsJSON, LeadCacheExpiry); err != nil {
			log.Printf("Failed to set leads in cache: %v", err)
		}
	}

	return leads, nil
}

// GetFollowUpsDue returns open leads whose follow-up date is on or before
// the given date.
func (r *LeadRepository) GetFollowUpsDue(ctx context.Context, date string) ([]models.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var leads []models.Lead
	err := database.DB.
		Where("status IN ('New', 'Contacted')").
		Where("follow_up_date != '' AND follow_up_date <= ?", date).
		Order("follow_up_date ASC").
		Find(&leads).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get follow-ups: %w", err)
	}
	return leads, nil
}

func (r *LeadRepository) Update(ctx context.Context, lead *models.Lead) error {
	if err := database.DB.Save(lead).Error; err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}
	return r.cache.Delete(ctx, "leads_cache")
}

func (r *LeadRepository) Delete(ctx context.Context, id uint) error {
	if err := database.DB.Delete(&models.Lead{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return r.cache.Delete(ctx, "leads_cache")
}
