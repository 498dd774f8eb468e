package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CareLedger/models"
)

const testDueDay = 10

func record(month, year int, monthlyFee, otherFees int64) *models.MonthlyRecord {
	return &models.MonthlyRecord{
		PatientID:  "PAT-000001",
		Month:      month,
		Year:       year,
		MonthlyFee: decimal.NewFromInt(monthlyFee),
		OtherFees:  decimal.NewFromInt(otherFees),
	}
}

func payment(id uint, amount int64, date string) models.PaymentEvent {
	return models.PaymentEvent{
		ID:          id,
		PatientID:   "PAT-000001",
		Amount:      decimal.NewFromInt(amount),
		PaymentDate: date,
		PaymentMode: "Cash",
		Type:        models.PaymentTypeFee,
	}
}

func paymentFor(id uint, amount int64, date string, month, year int) models.PaymentEvent {
	event := payment(id, amount, date)
	event.Month = &month
	event.Year = &year
	return event
}

func asOf(date string) time.Time {
	t, _ := time.Parse(DateLayout, date)
	return t
}

func TestReconcileCarryForwardChain(t *testing.T) {
	records := []*models.MonthlyRecord{
		record(3, 2025, 800, 0),
		record(1, 2025, 1000, 200),
		record(2, 2025, 1000, 0),
	}
	events := []models.PaymentEvent{
		paymentFor(1, 500, "2025-01-15", 1, 2025),
		payment(2, 300, "2025-02-20"),
	}

	Reconcile(records, events, testDueDay, asOf("2025-03-05"))

	// Reconcile sorts the slice chronologically.
	require.Equal(t, 1, records[0].Month)
	require.Equal(t, 2, records[1].Month)
	require.Equal(t, 3, records[2].Month)

	assert.Equal(t, "0", records[0].CarryForwardFromPrevious.String())
	for i := 0; i < len(records)-1; i++ {
		assert.True(t, records[i+1].CarryForwardFromPrevious.Equal(records[i].CarryForwardToNext),
			"carry into month %d must equal carry out of month %d", records[i+1].Month, records[i].Month)
	}
	for _, r := range records {
		assert.False(t, r.AmountPaid.IsNegative(), "amount_paid must never be negative")
		assert.False(t, r.CarryForwardToNext.IsNegative(), "carry_forward_to_next must never be negative")
	}
}

func TestReconcileIdempotent(t *testing.T) {
	records := []*models.MonthlyRecord{
		record(1, 2025, 1000, 0),
		record(2, 2025, 500, 100),
	}
	events := []models.PaymentEvent{
		paymentFor(1, 400, "2025-01-12", 1, 2025),
		payment(2, 250, "2025-02-03"),
	}
	now := asOf("2025-02-15")

	Reconcile(records, events, testDueDay, now)
	first := make([]models.MonthlyRecord, len(records))
	for i, r := range records {
		first[i] = *r
	}

	Reconcile(records, events, testDueDay, now)
	for i, r := range records {
		assert.True(t, r.AmountPaid.Equal(first[i].AmountPaid))
		assert.True(t, r.AmountPending.Equal(first[i].AmountPending))
		assert.True(t, r.CarryForwardFromPrevious.Equal(first[i].CarryForwardFromPrevious))
		assert.True(t, r.CarryForwardToNext.Equal(first[i].CarryForwardToNext))
		assert.Equal(t, first[i].PaymentStatus, r.PaymentStatus)
		assert.Equal(t, first[i].DueDate, r.DueDate)
	}
}

func TestReconcileFIFOSettlement(t *testing.T) {
	records := []*models.MonthlyRecord{
		record(1, 2025, 100, 0),
		record(2, 2025, 50, 0),
	}
	events := []models.PaymentEvent{
		payment(1, 120, "2025-02-15"),
	}

	allocations := Reconcile(records, events, testDueDay, asOf("2025-02-15"))

	assert.Equal(t, "0", records[0].AmountPending.String(), "oldest debt settles first")
	// 100 settled January, January carried nothing forward, so February
	// owes 50 and received the remaining 20.
	assert.Equal(t, "30", records[1].AmountPending.String())
	assert.Equal(t, "20", records[1].AmountPaid.String())

	require.Len(t, allocations, 2)
	assert.Equal(t, 1, allocations[0].Month)
	assert.Equal(t, "100", allocations[0].Amount.String())
	assert.Equal(t, 2, allocations[1].Month)
	assert.Equal(t, "20", allocations[1].Amount.String())
}

func TestReconcileCarryForwardPropagation(t *testing.T) {
	records := []*models.MonthlyRecord{
		record(1, 2025, 100, 0),
		record(2, 2025, 50, 0),
	}
	now := asOf("2025-02-05")

	Reconcile(records, nil, testDueDay, now)
	assert.Equal(t, "100", records[1].CarryForwardFromPrevious.String())
	assert.Equal(t, "150", records[1].AmountPending.String())

	// Paying January later must ripple into February's carry-forward.
	events := []models.PaymentEvent{
		paymentFor(1, 100, "2025-02-04", 1, 2025),
	}
	Reconcile(records, events, testDueDay, now)

	assert.Equal(t, "0", records[0].AmountPending.String())
	assert.Equal(t, "0", records[1].CarryForwardFromPrevious.String())
	assert.Equal(t, "50", records[1].AmountPending.String())
	assert.Equal(t, models.StatusPending, records[1].PaymentStatus)
}

func TestReconcileStatusDerivation(t *testing.T) {
	t.Run("settled month is paid regardless of due date", func(t *testing.T) {
		records := []*models.MonthlyRecord{record(1, 2025, 100, 0)}
		events := []models.PaymentEvent{paymentFor(1, 100, "2025-01-05", 1, 2025)}
		Reconcile(records, events, testDueDay, asOf("2025-06-01"))
		assert.Equal(t, models.StatusPaid, records[0].PaymentStatus)
	})

	t.Run("unpaid month past due date is overdue", func(t *testing.T) {
		records := []*models.MonthlyRecord{record(1, 2025, 100, 0)}
		Reconcile(records, nil, testDueDay, asOf("2025-01-11"))
		assert.Equal(t, models.StatusOverdue, records[0].PaymentStatus)
	})

	t.Run("partially paid month past due date is overdue", func(t *testing.T) {
		records := []*models.MonthlyRecord{record(1, 2025, 100, 0)}
		events := []models.PaymentEvent{paymentFor(1, 40, "2025-01-05", 1, 2025)}
		Reconcile(records, events, testDueDay, asOf("2025-02-01"))
		assert.Equal(t, models.StatusOverdue, records[0].PaymentStatus)
	})

	t.Run("unpaid month before due date stays pending", func(t *testing.T) {
		records := []*models.MonthlyRecord{record(1, 2025, 100, 0)}
		Reconcile(records, nil, testDueDay, asOf("2025-01-10"))
		assert.Equal(t, models.StatusPending, records[0].PaymentStatus)
	})
}

func TestReconcileScenario(t *testing.T) {
	records := []*models.MonthlyRecord{record(1, 2025, 1000, 0)}
	now := asOf("2025-01-08")

	Reconcile(records, nil, testDueDay, now)
	assert.Equal(t, "1000", records[0].TotalAmount.String())
	assert.Equal(t, "0", records[0].CarryForwardFromPrevious.String())
	assert.Equal(t, models.StatusPending, records[0].PaymentStatus)

	events := []models.PaymentEvent{paymentFor(1, 400, "2025-01-08", 1, 2025)}
	Reconcile(records, events, testDueDay, now)
	assert.Equal(t, "400", records[0].AmountPaid.String())
	assert.Equal(t, "600", records[0].AmountPending.String())
	assert.Equal(t, models.StatusPartial, records[0].PaymentStatus)

	events = append(events, paymentFor(2, 600, "2025-01-09", 1, 2025))
	records = append(records, record(2, 2025, 1000, 0))
	Reconcile(records, events, testDueDay, now)
	assert.Equal(t, "0", records[0].AmountPending.String())
	assert.Equal(t, models.StatusPaid, records[0].PaymentStatus)
	assert.Equal(t, "0", records[0].CarryForwardToNext.String())
	assert.Equal(t, "0", records[1].CarryForwardFromPrevious.String())
}

func TestReconcileAdvanceCredit(t *testing.T) {
	records := []*models.MonthlyRecord{
		record(1, 2025, 100, 0),
	}
	events := []models.PaymentEvent{
		payment(1, 250, "2025-01-05"),
	}
	Reconcile(records, events, testDueDay, asOf("2025-01-05"))

	// Excess stays on the newest month as credit; credit never carries.
	assert.Equal(t, "250", records[0].AmountPaid.String())
	assert.Equal(t, "-150", records[0].AmountPending.String())
	assert.Equal(t, "0", records[0].CarryForwardToNext.String())
	assert.Equal(t, models.StatusPaid, records[0].PaymentStatus)
}

func TestReconcileEventOrdering(t *testing.T) {
	// Two unattributed payments settle in date order, not insert order.
	records := []*models.MonthlyRecord{
		record(1, 2025, 100, 0),
		record(2, 2025, 100, 0),
	}
	events := []models.PaymentEvent{
		payment(2, 100, "2025-02-02"),
		payment(1, 100, "2025-01-20"),
	}
	allocations := Reconcile(records, events, testDueDay, asOf("2025-02-05"))

	require.Len(t, allocations, 2)
	assert.Equal(t, uint(1), allocations[0].EventID)
	assert.Equal(t, 1, allocations[0].Month)
	assert.Equal(t, uint(2), allocations[1].EventID)
	assert.Equal(t, 2, allocations[1].Month)
}
