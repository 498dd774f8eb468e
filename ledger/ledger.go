package ledger

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"CareLedger/models"
)

// Errors surfaced by ledger operations. Validation errors are detected
// before any mutation; ErrRecordLocked is transient and the whole
// operation should be retried.
var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidPeriod   = errors.New("invalid period")
	ErrPatientNotFound = errors.New("patient not found")
	ErrRecordLocked    = errors.New("patient ledger is locked by another operation")
)

const (
	MinYear = 2000
	MaxYear = 2100

	// DateLayout is the calendar-date format used on the wire and in
	// date columns.
	DateLayout = "2006-01-02"
)

// ValidatePeriod checks that a billing period is inside the supported range.
func ValidatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d must be between 1 and 12", ErrInvalidPeriod, month)
	}
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: year %d must be between %d and %d", ErrInvalidPeriod, year, MinYear, MaxYear)
	}
	return nil
}

// ValidateMonthlyRecord rejects negative monetary inputs and out-of-range
// periods. No side effects.
func ValidateMonthlyRecord(record *models.MonthlyRecord) error {
	if err := ValidatePeriod(record.Month, record.Year); err != nil {
		return err
	}
	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"monthly_fee", record.MonthlyFee},
		{"other_fees", record.OtherFees},
		{"amount_paid", record.AmountPaid},
		{"carry_forward_from_previous", record.CarryForwardFromPrevious},
	}
	for _, amount := range amounts {
		if amount.value.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidAmount, amount.name)
		}
	}
	return nil
}

// ValidatePaymentEvent checks a payment before it is appended to the
// history. Month and year are optional but must be set together.
func ValidatePaymentEvent(event *models.PaymentEvent) error {
	if !event.Amount.IsPositive() {
		return fmt.Errorf("%w: payment amount must be positive", ErrInvalidAmount)
	}
	if (event.Month == nil) != (event.Year == nil) {
		return fmt.Errorf("%w: month and year must be provided together", ErrInvalidPeriod)
	}
	if event.Month != nil {
		if err := ValidatePeriod(*event.Month, *event.Year); err != nil {
			return err
		}
	}
	if _, err := time.Parse(DateLayout, event.PaymentDate); err != nil {
		return fmt.Errorf("%w: payment_date must be a calendar date (YYYY-MM-DD)", ErrInvalidPeriod)
	}
	return validation.ValidateStruct(event,
		validation.Field(&event.PaymentMode, validation.Required, validation.In(paymentModes()...)),
		validation.Field(&event.Type, validation.Required,
			validation.In(models.PaymentTypeFee, models.PaymentTypeAdvance, models.PaymentTypePartial)),
	)
}

func paymentModes() []interface{} {
	modes := make([]interface{}, len(models.PaymentModes))
	for i, mode := range models.PaymentModes {
		modes[i] = mode
	}
	return modes
}

// DueDate returns the payment due date for a billing period. dueDay is
// clamped to the last day of the month.
func DueDate(month, year, dueDay int) string {
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := dueDay
	if day <= 0 || day > lastDay {
		day = lastDay
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// deriveStatus maps the reconciled amounts to a payment status. Fully
// settled months are always paid, regardless of the due date; overdue is
// an overlay on pending/partial once the due date has passed.
func deriveStatus(pending, paid decimal.Decimal, dueDate string, asOf time.Time) string {
	if pending.Sign() <= 0 {
		return models.StatusPaid
	}
	if dueDate != "" && asOf.UTC().Format(DateLayout) > dueDate {
		return models.StatusOverdue
	}
	if paid.IsPositive() {
		return models.StatusPartial
	}
	return models.StatusPending
}

func periodKey(month, year int) int {
	return year*12 + month - 1
}
