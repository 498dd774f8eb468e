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
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	StaffCacheExpiry = 7 * 24 * time.Hour
)

type StaffRepository struct {
	cache *cache.Cache
}

func NewStaffRepository(cache *cache.Cache) *StaffRepository {
	return &StaffRepository{cache: cache}
}

func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	lockKey := fmt.Sprintf("staff_lock:%s_%s", staff.Name, staff.Phone)
	lockValue := uuid.New().String()
	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	var existingStaff models.Staff
	if err := database.DB.Where("name = ? AND phone = ?", staff.Name, staff.Phone).
		First(&existingStaff).Error; err == nil {
		return errors.New("staff member with the same details already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for existing staff: %w", err)
	}

	nextID, err := nextSequentialID(database.DB, "staff", "STF")
	if err != nil {
		return err
	}
	staff.ID = nextID

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(staff).Error; err != nil {
			return fmt.Errorf("failed to create staff: %w", err)
		}
		return r.cache.DeleteAll(ctx, "staff_cache*")
	})
}

func (r *StaffRepository) GetAll(ctx context.Context) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "staff_cache"
	cachedStaff, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedStaff != "" {
		var staff []models.Staff
		if err := json.Unmarshal([]byte(cachedStaff), &staff); err == nil {
			return staff, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get staff from cache: %v", err)
	}

	var staff []models.Staff
	err = database.DB.Order("created_at DESC").Find(&staff).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all staff: %w", err)
	}

	staffJSON, err := json.Marshal(staff)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal staff: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, staffJSON, StaffCacheExpiry); err != nil {
		log.Printf("Failed to set staff in cache: %v", err)
	}

	return staff, nil
}

func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	if err := database.DB.Save(staff).Error; err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}
	return r.cache.DeleteAll(ctx, "staff_cache*")
}

func (r *StaffRepository) Delete(ctx context.Context, id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", id).Delete(&models.StaffAttendance{}).Error; err != nil {
			return fmt.Errorf("failed to delete staff attendance: %w", err)
		}
		if err := tx.Delete(&models.Staff{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete staff: %w", err)
		}
		return r.cache.DeleteAll(ctx, "staff_cache*")
	})
}

// MarkAttendance records or overwrites the attendance row for a staff
// member on a given day.
func (r *StaffRepository) MarkAttendance(ctx context.Context, attendance *models.StaffAttendance) error {
	var count int64
	if err := database.DB.Model(&models.Staff{}).Where("id = ?", attendance.StaffID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check staff: %w", err)
	}
	if count == 0 {
		return errors.New("staff member does not exist")
	}

	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "staff_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"check_in", "check_out", "status", "working_hours", "notes"}),
	}).Create(attendance).Error
	if err != nil {
		return fmt.Errorf("failed to mark attendance: %w", err)
	}
	return r.cache.Delete(ctx, r.getAttendanceCacheKey(attendance.StaffID))
}

func (r *StaffRepository) GetAttendance(ctx context.Context, staffID, from, to string) ([]models.StaffAttendance, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var attendance []models.StaffAttendance
	query := database.DB.Where("staff_id = ?", staffID)
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	if to != "" {
		query = query.Where("date <= ?", to)
	}
	err := query.Order("date DESC").Find(&attendance).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return attendance, nil
}

func (r *StaffRepository) getAttendanceCacheKey(staffID string) string {
	return fmt.Sprintf("staff_cache:attendance:%s", staffID)
}
