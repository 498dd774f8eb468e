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
	InventoryCacheExpiry = 24 * time.Hour
)

type InventoryRepository struct {
	cache *cache.Cache
}

func NewInventoryRepository(cache *cache.Cache) *InventoryRepository {
	return &InventoryRepository{cache: cache}
}

func (r *InventoryRepository) Create(ctx context.Context, item *models.MedicineItem) error {
	var existingItem models.MedicineItem
	if err := database.DB.Where("name = ? AND supplier = ?", item.Name, item.Supplier).
		First(&existingItem).Error; err == nil {
		return errors.New("medicine item with the same name and supplier already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for existing item: %w", err)
	}

	if err := database.DB.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create medicine item: %w", err)
	}
	return r.cache.Delete(ctx, "inventory_cache")
}

func (r *InventoryRepository) GetAll(ctx context.Context) ([]models.MedicineItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedItems, err := r.cache.Get(ctx, "inventory_cache")
	if err == nil && cachedItems != "" {
		var items []models.MedicineItem
		if err := json.Unmarshal([]byte(cachedItems), &items); err == nil {
			return items, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get inventory from cache: %v", err)
	}

	var items []models.MedicineItem
	if err := database.DB.Order("name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inventory: %w", err)
	}
	if err := r.cache.Set(ctx, "inventory_cache", itemsJSON, InventoryCacheExpiry); err != nil {
		log.Printf("Failed to set inventory in cache: %v", err)
	}

	return items, nil
}

func (r *InventoryRepository) Update(ctx context.Context, item *models.MedicineItem) error {
	if err := database.DB.Save(item).Error; err != nil {
		return fmt.Errorf("failed to update medicine item: %w", err)
	}
	return r.cache.Delete(ctx, "inventory_cache")
}

// AdjustStock applies a signed quantity delta. Negative adjustments
// may not take the stock below zero.
func (r *InventoryRepository) AdjustStock(ctx context.Context, id uint, delta int) error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var item models.MedicineItem
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("medicine item does not exist")
			}
			return fmt.Errorf("failed to get medicine item: %w", err)
		}
		if item.Quantity+delta < 0 {
			return errors.New("insufficient stock")
		}
		return tx.Model(&item).Update("quantity", item.Quantity+delta).Error
	})
	if err != nil {
		return err
	}
	return r.cache.Delete(ctx, "inventory_cache")
}

func (r *InventoryRepository) Delete(ctx context.Context, id uint) error {
	if err := database.DB.Delete(&models.MedicineItem{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete medicine item: %w", err)
	}
	return r.cache.Delete(ctx, "inventory_cache")
}
