package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CareLedger/models"
)

func TestValidateMonthlyRecord(t *testing.T) {
	valid := record(1, 2025, 1000, 0)
	require.NoError(t, ValidateMonthlyRecord(valid))

	t.Run("month out of range", func(t *testing.T) {
		err := ValidateMonthlyRecord(record(13, 2025, 0, 0))
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("year out of range", func(t *testing.T) {
		err := ValidateMonthlyRecord(record(6, 1999, 0, 0))
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("negative fee", func(t *testing.T) {
		err := ValidateMonthlyRecord(record(6, 2025, -100, 0))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("negative other fees", func(t *testing.T) {
		err := ValidateMonthlyRecord(record(6, 2025, 100, -1))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestValidatePaymentEvent(t *testing.T) {
	t.Run("valid attributed payment", func(t *testing.T) {
		event := paymentFor(1, 500, "2025-01-15", 1, 2025)
		assert.NoError(t, ValidatePaymentEvent(&event))
	})

	t.Run("valid unattributed payment", func(t *testing.T) {
		event := payment(1, 500, "2025-01-15")
		assert.NoError(t, ValidatePaymentEvent(&event))
	})

	t.Run("zero amount", func(t *testing.T) {
		event := payment(1, 0, "2025-01-15")
		assert.ErrorIs(t, ValidatePaymentEvent(&event), ErrInvalidAmount)
	})

	t.Run("negative amount", func(t *testing.T) {
		event := payment(1, -10, "2025-01-15")
		assert.ErrorIs(t, ValidatePaymentEvent(&event), ErrInvalidAmount)
	})

	t.Run("month without year", func(t *testing.T) {
		event := payment(1, 100, "2025-01-15")
		month := 1
		event.Month = &month
		assert.ErrorIs(t, ValidatePaymentEvent(&event), ErrInvalidPeriod)
	})

	t.Run("malformed date", func(t *testing.T) {
		event := payment(1, 100, "15/01/2025")
		assert.ErrorIs(t, ValidatePaymentEvent(&event), ErrInvalidPeriod)
	})

	t.Run("unknown payment mode", func(t *testing.T) {
		event := payment(1, 100, "2025-01-15")
		event.PaymentMode = "Barter"
		assert.Error(t, ValidatePaymentEvent(&event))
	})

	t.Run("unknown payment type", func(t *testing.T) {
		event := payment(1, 100, "2025-01-15")
		event.Type = "refund"
		assert.Error(t, ValidatePaymentEvent(&event))
	})
}

func TestDueDate(t *testing.T) {
	assert.Equal(t, "2025-01-10", DueDate(1, 2025, 10))
	// Clamped to the last day of short months.
	assert.Equal(t, "2025-02-28", DueDate(2, 2025, 30))
	assert.Equal(t, "2024-02-29", DueDate(2, 2024, 31))
	// Zero means end of month.
	assert.Equal(t, "2025-04-30", DueDate(4, 2025, 0))
}

func TestDeriveStatus(t *testing.T) {
	zero := decimal.Zero
	hundred := decimal.NewFromInt(100)

	assert.Equal(t, models.StatusPaid, deriveStatus(zero, hundred, "2025-01-10", asOf("2025-06-01")))
	assert.Equal(t, models.StatusPaid, deriveStatus(hundred.Neg(), hundred, "2025-01-10", asOf("2025-06-01")))
	assert.Equal(t, models.StatusOverdue, deriveStatus(hundred, zero, "2025-01-10", asOf("2025-01-11")))
	assert.Equal(t, models.StatusOverdue, deriveStatus(hundred, hundred, "2025-01-10", asOf("2025-01-11")))
	assert.Equal(t, models.StatusPartial, deriveStatus(hundred, hundred, "2025-01-10", asOf("2025-01-09")))
	assert.Equal(t, models.StatusPending, deriveStatus(hundred, zero, "2025-01-10", asOf("2025-01-10")))
}
