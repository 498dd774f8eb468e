package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"CareLedger/models"
)

// Allocation records how much of a payment event settled a given month.
// One event can settle several months when it arrives unattributed.
type Allocation struct {
	EventID uint
	Month   int
	Year    int
	Amount  decimal.Decimal
}

type openPayment struct {
	id        uint
	remaining decimal.Decimal
}

// Reconcile recomputes a patient's full monthly chain from its fee inputs
// and payment history. Records are sorted and mutated in place; the
// returned allocations say which event paid which month.
//
// Rules:
//   - total_amount = monthly_fee + other_fees
//   - carry_forward_from_previous of the first month is zero; every later
//     month inherits carry_forward_to_next of its chronological
//     predecessor
//   - events attributed to a month count toward that month only
//   - unattributed events settle the oldest month with a positive pending
//     amount first, in payment-date order
//   - money left over after the newest month stays there as credit
//     (negative amount_pending); credit never flows forward, so
//     carry_forward_to_next is floored at zero
//
// Because the whole chain is recomputed, carry-forward propagation always
// reaches its fixed point in a single pass.
func Reconcile(records []*models.MonthlyRecord, events []models.PaymentEvent, dueDay int, asOf time.Time) []Allocation {
	sort.Slice(records, func(i, j int) bool {
		return periodKey(records[i].Month, records[i].Year) < periodKey(records[j].Month, records[j].Year)
	})
	known := make(map[int]bool, len(records))
	for _, record := range records {
		known[periodKey(record.Month, record.Year)] = true
	}

	sorted := make([]models.PaymentEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].PaymentDate != sorted[j].PaymentDate {
			return sorted[i].PaymentDate < sorted[j].PaymentDate
		}
		return sorted[i].ID < sorted[j].ID
	})

	attributed := make(map[int]decimal.Decimal)
	var queue []openPayment
	var allocations []Allocation
	for _, event := range sorted {
		if event.Month != nil && event.Year != nil && known[periodKey(*event.Month, *event.Year)] {
			key := periodKey(*event.Month, *event.Year)
			attributed[key] = attributed[key].Add(event.Amount)
			allocations = append(allocations, Allocation{
				EventID: event.ID, Month: *event.Month, Year: *event.Year, Amount: event.Amount,
			})
			continue
		}
		// Events pointing at a missing month are settled FIFO like
		// unattributed ones.
		queue = append(queue, openPayment{id: event.ID, remaining: event.Amount})
	}

	carryIn := decimal.Zero
	for i, record := range records {
		record.TotalAmount = record.MonthlyFee.Add(record.OtherFees)
		record.CarryForwardFromPrevious = carryIn
		paid := attributed[periodKey(record.Month, record.Year)]
		pending := record.TotalAmount.Add(carryIn).Sub(paid)

		for len(queue) > 0 && pending.IsPositive() {
			use := decimal.Min(queue[0].remaining, pending)
			paid = paid.Add(use)
			pending = pending.Sub(use)
			queue[0].remaining = queue[0].remaining.Sub(use)
			allocations = append(allocations, Allocation{
				EventID: queue[0].id, Month: record.Month, Year: record.Year, Amount: use,
			})
			if queue[0].remaining.IsZero() {
				queue = queue[1:]
			}
		}

		if i == len(records)-1 {
			for _, open := range queue {
				paid = paid.Add(open.remaining)
				pending = pending.Sub(open.remaining)
				allocations = append(allocations, Allocation{
					EventID: open.id, Month: record.Month, Year: record.Year, Amount: open.remaining,
				})
			}
			queue = nil
		}

		record.AmountPaid = paid
		record.AmountPending = pending
		record.CarryForwardToNext = decimal.Max(pending, decimal.Zero)
		record.DueDate = DueDate(record.Month, record.Year, dueDay)
		record.PaymentStatus = deriveStatus(pending, paid, record.DueDate, asOf)
		carryIn = record.CarryForwardToNext
	}
	return allocations
}
