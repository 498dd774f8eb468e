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
	MedicalRecordCacheExpiry = 24 * time.Hour
)

type MedicalRecordRepository struct {
	cache *cache.Cache
}

func NewMedicalRecordRepository(cache *cache.Cache) *MedicalRecordRepository {
	return &MedicalRecordRepository{cache: cache}
}

func (r *MedicalRecordRepository) Create(ctx context.Context, record *models.MedicalRecord) error {
	var count int64
	if err := database.DB.Model(&models.Patient{}).Where("id = ?", record.PatientID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check patient: %w", err)
	}
	if count == 0 {
		return errors.New("patient does not exist")
	}

	if err := database.DB.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create medical record: %w", err)
	}
	return r.cache.Delete(ctx, r.getPatientRecordsCacheKey(record.PatientID))
}

func (r *MedicalRecordRepository) GetByPatient(ctx context.Context, patientID string) ([]models.MedicalRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientRecordsCacheKey(patientID)
	cachedRecords, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedRecords != "" {
		var records []models.MedicalRecord
		if err := json.Unmarshal([]byte(cachedRecords), &records); err == nil {
			return records, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get medical records from cache: %v", err)
	}

	var records []models.MedicalRecord
	err = database.DB.
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, specialization")
		}).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get medical records: %w", err)
	}

	recordsJSON, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal medical records: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, recordsJSON, MedicalRecordCacheExpiry); err != nil {
		log.Printf("Failed to set medical records in cache: %v", err)
	}

	return records, nil
}

func (r *MedicalRecordRepository) Update(ctx context.Context, record *models.MedicalRecord) error {
	if err := database.DB.Save(record).Error; err != nil {
		return fmt.Errorf("failed to update medical record: %w", err)
	}
	return r.cache.Delete(ctx, r.getPatientRecordsCacheKey(record.PatientID))
}

func (r *MedicalRecordRepository) Delete(ctx context.Context, id uint) error {
	var record models.MedicalRecord
	if err := database.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get medical record: %w", err)
	}
	if err := database.DB.Delete(&models.MedicalRecord{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete medical record: %w", err)
	}
	return r.cache.Delete(ctx, r.getPatientRecordsCacheKey(record.PatientID))
}

// DeleteAllCache drops every cached medical record listing. Used when a
// patient is removed together with their records.
func (r *MedicalRecordRepository) DeleteAllCache(ctx context.Context) error {
	return r.cache.DeleteAll(ctx, "medical_records_cache:*")
}

func (r *MedicalRecordRepository) getPatientRecordsCacheKey(patientID string) string {
	return fmt.Sprintf("medical_records_cache:%s", patientID)
}
