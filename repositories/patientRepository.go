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
)

const (
	PatientCacheExpiry = 7 * 24 * time.Hour
)

type PatientRepository struct {
	cache             *cache.Cache
	ledgerRepo        *LedgerRepository
	medicalRecordRepo *MedicalRecordRepository
}

func NewPatientRepository(cache *cache.Cache, ledgerRepo *LedgerRepository, medicalRecordRepo *MedicalRecordRepository) *PatientRepository {
	return &PatientRepository{
		cache:             cache,
		ledgerRepo:        ledgerRepo,
		medicalRecordRepo: medicalRecordRepo,
	}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	lockKey := fmt.Sprintf("patient_lock:%s_%s", patient.Name, patient.Phone)
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

	// Check if a record with the same unique fields already exists
	var existingPatient models.Patient
	if err := database.DB.Where("name = ? AND phone = ?", patient.Name, patient.Phone).
		First(&existingPatient).Error; err == nil {
		return errors.New("patient with the same details already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for existing patient: %w", err)
	}

	// Assign the next sequential ID; safe because we hold the lock.
	nextID, err := nextSequentialID(database.DB, "patient", "PAT")
	if err != nil {
		return err
	}
	patient.ID = nextID

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(patient).Error; err != nil {
			return fmt.Errorf("failed to create patient: %w", err)
		}
		if err := r.cache.Delete(ctx, r.getPatientCacheKey(patient.ID)); err != nil {
			return fmt.Errorf("failed to delete patient cache: %w", err)
		}
		return r.cache.DeleteAll(ctx, "patients_cache")
	})
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientCacheKey(id)
	cachedPatient, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedPatient != "" {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cachedPatient), &patient); err == nil {
			return &patient, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	err = database.DB.
		Preload("MedicalRecords", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, patient_id, doctor_id, diagnosis, prescription, notes, created_at")
		}).
		First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	patientJSON, err := json.Marshal(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patient: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}

	return &patient, nil
}

func (r *PatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "patients_cache"
	cachedPatients, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedPatients != "" {
		var patients []models.Patient
		if err := json.Unmarshal([]byte(cachedPatients), &patients); err == nil {
			return patients, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get patients from cache: %v", err)
	}

	var patients []models.Patient
	err = database.DB.Order("created_at DESC").Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}

	patientsJSON, err := json.Marshal(patients)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patients: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientsJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patients in cache: %v", err)
	}

	return patients, nil
}

func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	lockKey := fmt.Sprintf("patient_lock:%s", patient.ID)
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

	err = database.DB.Save(patient).Error
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}

	if err := r.cache.Delete(ctx, r.getPatientCacheKey(patient.ID)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "patients_cache")
}

// DeletePatientAndRelated removes a patient together with its ledger,
// payment history, and medical records in one transaction.
func (r *PatientRepository) DeletePatientAndRelated(ctx context.Context, id string) error {
	lockKey := fmt.Sprintf("patient_lock:%s", id)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("failed to acquire lock")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := r.ledgerRepo.DeleteLedger(ctx, tx, id); err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", id).Delete(&models.MedicalRecord{}).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Delete(&models.Patient{}, "id = ?", id).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := r.cache.Delete(ctx, r.getPatientCacheKey(id)); err != nil {
			return err
		}
		if err := r.cache.DeleteAll(ctx, "patients_cache"); err != nil {
			return err
		}
		return r.medicalRecordRepo.DeleteAllCache(ctx)
	})
}

func (r *PatientRepository) getPatientCacheKey(patientID string) string {
	return fmt.Sprintf("patient_cache:%s", patientID)
}

// nextSequentialID computes the next prefixed ID (e.g. PAT-000042) from
// the current maximum. Callers must hold the corresponding creation lock.
func nextSequentialID(db *gorm.DB, table, prefix string) (string, error) {
	var maxSeq int64
	query := fmt.Sprintf(
		"SELECT COALESCE(MAX(CAST(SUBSTRING(id, %d) AS UNSIGNED)), 0) FROM `%s`",
		len(prefix)+2, table,
	)
	if err := db.Raw(query).Scan(&maxSeq).Error; err != nil {
		return "", fmt.Errorf("failed to obtain next sequence value: %w", err)
	}
	return fmt.Sprintf("%s-%06d", prefix, maxSeq+1), nil
}
