package repositories

import (
	"CareLedger/cache"
	"CareLedger/database"
	"CareLedger/ledger"
	"CareLedger/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const ledgerLockTTL = 10 * time.Second

// LedgerRepository owns all reads and writes of a patient's monthly fee
// chain and payment history. Every mutating operation serializes on a
// per-patient Redis lock and runs inside one database transaction, so a
// failure leaves the chain exactly as it was.
type LedgerRepository struct {
	db     *gorm.DB
	cache  *cache.Cache
	dueDay int
}

// NewLedgerRepository takes the database handle explicitly so tests can
// substitute their own.
func NewLedgerRepository(db *gorm.DB, cache *cache.Cache, dueDay int) *LedgerRepository {
	return &LedgerRepository{db: db, cache: cache, dueDay: dueDay}
}

// lockPatient serializes all mutations of one patient's ledger. Returns
// ErrRecordLocked when a concurrent operation holds the lock; the caller
// should retry the whole operation.
func (r *LedgerRepository) lockPatient(ctx context.Context, patientID string) (func(), error) {
	lockKey := fmt.Sprintf("ledger_lock:%s", patientID)
	lockValue := uuid.New().String()
	maxRetries := 3
	retryDelay := 200 * time.Millisecond
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, ledgerLockTTL)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ledger.ErrRecordLocked, err)
		}
		return nil, ledger.ErrRecordLocked
	}
	return func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release ledger lock: %v", err)
		}
	}, nil
}

func ensurePatient(tx *gorm.DB, patientID string) error {
	var count int64
	if err := tx.Model(&models.Patient{}).Where("id = ?", patientID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check patient: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: %s", ledger.ErrPatientNotFound, patientID)
	}
	return nil
}

func loadChain(tx *gorm.DB, patientID string) ([]*models.MonthlyRecord, []models.PaymentEvent, error) {
	var rows []models.MonthlyRecord
	if err := tx.Where("patient_id = ?", patientID).
		Order("year, month").
		Find(&rows).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load monthly records: %w", err)
	}
	records := make([]*models.MonthlyRecord, len(rows))
	for i := range rows {
		records[i] = &rows[i]
	}

	var events []models.PaymentEvent
	if err := tx.Where("patient_id = ?", patientID).
		Order("payment_date, id").
		Find(&events).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load payment history: %w", err)
	}
	return records, events, nil
}

// ensureMonthlyRecord lazily creates the record for a billing period with
// zero fees, so payments can arrive before the month is billed.
func (r *LedgerRepository) ensureMonthlyRecord(tx *gorm.DB, patientID string, month, year int) error {
	record := models.MonthlyRecord{
		PatientID: patientID,
		Month:     month,
		Year:      year,
		DueDate:   ledger.DueDate(month, year, r.dueDay),
	}
	if err := tx.Where("patient_id = ? AND month = ? AND year = ?", patientID, month, year).
		FirstOrCreate(&record).Error; err != nil {
		return fmt.Errorf("failed to create monthly record: %w", err)
	}
	return nil
}

// RecordPayment appends a payment event, recomputes the affected chain
// and returns the updated statement.
func (r *LedgerRepository) RecordPayment(ctx context.Context, patientID string, event *models.PaymentEvent) ([]models.StatementMonth, error) {
	if err := ledger.ValidatePaymentEvent(event); err != nil {
		return nil, err
	}

	release, err := r.lockPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	defer release()

	var statement []models.StatementMonth
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensurePatient(tx, patientID); err != nil {
			return err
		}

		if event.Month != nil {
			if err := r.ensureMonthlyRecord(tx, patientID, *event.Month, *event.Year); err != nil {
				return err
			}
		} else {
			// An unattributed payment against an empty chain opens the
			// month of the payment date.
			var count int64
			if err := tx.Model(&models.MonthlyRecord{}).Where("patient_id = ?", patientID).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to count monthly records: %w", err)
			}
			if count == 0 {
				paidOn, _ := time.Parse(ledger.DateLayout, event.PaymentDate)
				if err := r.ensureMonthlyRecord(tx, patientID, int(paidOn.Month()), paidOn.Year()); err != nil {
					return err
				}
			}
		}

		event.ID = 0
		event.PatientID = patientID
		if err := tx.Create(event).Error; err != nil {
			return fmt.Errorf("failed to append payment event: %w", err)
		}

		statement, err = r.reconcileChain(tx, patientID)
		return err
	})
	if err != nil {
		return nil, err
	}

	r.invalidateStatement(ctx, patientID)
	return statement, nil
}

// SetMonthlyFee updates the fee inputs of a billing period and ripples
// the carry-forward chain exactly like a payment does.
func (r *LedgerRepository) SetMonthlyFee(ctx context.Context, patientID string, month, year int, monthlyFee, otherFees decimal.Decimal) ([]models.StatementMonth, error) {
	candidate := models.MonthlyRecord{
		PatientID:  patientID,
		Month:      month,
		Year:       year,
		MonthlyFee: monthlyFee,
		OtherFees:  otherFees,
	}
	if err := ledger.ValidateMonthlyRecord(&candidate); err != nil {
		return nil, err
	}

	release, err := r.lockPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	defer release()

	var statement []models.StatementMonth
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensurePatient(tx, patientID); err != nil {
			return err
		}
		if err := r.ensureMonthlyRecord(tx, patientID, month, year); err != nil {
			return err
		}
		if err := tx.Model(&models.MonthlyRecord{}).
			Where("patient_id = ? AND month = ? AND year = ?", patientID, month, year).
			Updates(map[string]interface{}{
				"monthly_fees": monthlyFee,
				"other_fees":   otherFees,
			}).Error; err != nil {
			return fmt.Errorf("failed to update fees: %w", err)
		}

		statement, err = r.reconcileChain(tx, patientID)
		return err
	})
	if err != nil {
		return nil, err
	}

	r.invalidateStatement(ctx, patientID)
	return statement, nil
}

// RecomputeMonth rebuilds the chain from the payment history. Idempotent;
// used for administrative correction.
func (r *LedgerRepository) RecomputeMonth(ctx context.Context, patientID string, month, year int) ([]models.StatementMonth, error) {
	if err := ledger.ValidatePeriod(month, year); err != nil {
		return nil, err
	}

	release, err := r.lockPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	defer release()

	var statement []models.StatementMonth
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensurePatient(tx, patientID); err != nil {
			return err
		}
		statement, err = r.reconcileChain(tx, patientID)
		return err
	})
	if err != nil {
		return nil, err
	}

	r.invalidateStatement(ctx, patientID)
	return statement, nil
}

// reconcileChain recomputes every derived column of the patient's chain
// and persists the result. Must run inside a transaction.
func (r *LedgerRepository) reconcileChain(tx *gorm.DB, patientID string) ([]models.StatementMonth, error) {
	records, events, err := loadChain(tx, patientID)
	if err != nil {
		return nil, err
	}
	allocations := ledger.Reconcile(records, events, r.dueDay, time.Now())
	for _, record := range records {
		if err := tx.Save(record).Error; err != nil {
			return nil, fmt.Errorf("failed to persist monthly record %d/%d: %w", record.Month, record.Year, err)
		}
	}
	return buildStatement(records, events, allocations), nil
}

// GetStatement returns the chronological statement of a patient.
// Read-only: derived values are recomputed in memory, never persisted.
func (r *LedgerRepository) GetStatement(ctx context.Context, patientID string) ([]models.StatementMonth, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getStatementCacheKey(patientID)
	cachedStatement, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedStatement != "" {
		var statement []models.StatementMonth
		if err := json.Unmarshal([]byte(cachedStatement), &statement); err == nil {
			return statement, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get statement from cache: %v", err)
	}

	if err := ensurePatient(r.db, patientID); err != nil {
		return nil, err
	}
	records, events, err := loadChain(r.db, patientID)
	if err != nil {
		return nil, err
	}
	allocations := ledger.Reconcile(records, events, r.dueDay, time.Now())
	statement := buildStatement(records, events, allocations)

	statementJSON, err := json.Marshal(statement)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal statement: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, statementJSON, statementCacheTTL(time.Now())); err != nil {
		log.Printf("Failed to set statement in cache: %v", err)
	}

	return statement, nil
}

// statementCacheTTL expires cached statements at the next UTC midnight.
// Statuses are derived from UTC calendar dates, so a month can turn
// overdue at that instant without any write to invalidate the cache.
func statementCacheTTL(now time.Time) time.Duration {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	return midnight.Sub(now)
}

// GetPaymentHistory returns the append-only payment history, newest first.
func (r *LedgerRepository) GetPaymentHistory(ctx context.Context, patientID string) ([]models.PaymentEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := ensurePatient(r.db, patientID); err != nil {
		return nil, err
	}
	var events []models.PaymentEvent
	if err := r.db.Where("patient_id = ?", patientID).
		Order("payment_date DESC, id DESC").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to load payment history: %w", err)
	}
	return events, nil
}

// DeleteLedger removes a patient's chain and history. Used by the patient
// repository when a patient is deleted with related records.
func (r *LedgerRepository) DeleteLedger(ctx context.Context, tx *gorm.DB, patientID string) error {
	if err := tx.Where("patient_id = ?", patientID).Delete(&models.PaymentEvent{}).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := tx.Where("patient_id = ?", patientID).Delete(&models.MonthlyRecord{}).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.cache.Delete(ctx, r.getStatementCacheKey(patientID))
}

func (r *LedgerRepository) DeleteCache(ctx context.Context, patientID string) error {
	return r.cache.Delete(ctx, r.getStatementCacheKey(patientID))
}

func (r *LedgerRepository) invalidateStatement(ctx context.Context, patientID string) {
	if err := r.cache.Delete(ctx, r.getStatementCacheKey(patientID)); err != nil {
		log.Printf("Failed to delete statement cache: %v", err)
	}
	if err := r.cache.Delete(ctx, fmt.Sprintf("patient_cache:%s", patientID)); err != nil {
		log.Printf("Failed to delete patient cache: %v", err)
	}
}

func (r *LedgerRepository) getStatementCacheKey(patientID string) string {
	return fmt.Sprintf("statement_cache:%s", patientID)
}

// buildStatement groups each payment under the month that received its
// first allocation.
func buildStatement(records []*models.MonthlyRecord, events []models.PaymentEvent, allocations []ledger.Allocation) []models.StatementMonth {
	firstMonth := make(map[uint]int)
	for _, allocation := range allocations {
		if _, ok := firstMonth[allocation.EventID]; !ok {
			firstMonth[allocation.EventID] = periodIndex(allocation.Month, allocation.Year)
		}
	}

	statement := make([]models.StatementMonth, len(records))
	for i, record := range records {
		statement[i] = models.StatementMonth{MonthlyRecord: *record}
		key := periodIndex(record.Month, record.Year)
		for _, event := range events {
			if firstMonth[event.ID] == key {
				statement[i].Payments = append(statement[i].Payments, event)
			}
		}
	}
	return statement
}

func periodIndex(month, year int) int {
	return year*12 + month - 1
}
