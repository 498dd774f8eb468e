package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment status values derived by the ledger engine. The stored column is
// only a cache of the derivation; the engine recomputes it on every write.
const (
	StatusPending = "pending"
	StatusPartial = "partial"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

// Payment modes accepted at the front desk.
var PaymentModes = []string{"Cash", "Card", "Bank Transfer", "UPI", "Cheque"}

// Payment event types.
const (
	PaymentTypeFee     = "fee_payment"
	PaymentTypeAdvance = "advance_payment"
	PaymentTypePartial = "partial_payment"
)

// MonthlyRecord model. One row per (patient, month, year). The monetary
// outputs (total_amount, amount_paid, amount_pending, carry forwards,
// payment_status) are recomputed from fee inputs and the payment history
// by the ledger engine on every mutation.
type MonthlyRecord struct {
	ID                       uint            `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID                string          `gorm:"column:patient_id;not null;index;uniqueIndex:idx_patient_month_year" json:"patient_id"`
	Month                    int             `gorm:"column:month;not null;uniqueIndex:idx_patient_month_year" json:"month"`
	Year                     int             `gorm:"column:year;not null;uniqueIndex:idx_patient_month_year" json:"year"`
	MonthlyFee               decimal.Decimal `gorm:"column:monthly_fees;type:decimal(10,2);not null;default:0.00" json:"monthly_fee"`
	OtherFees                decimal.Decimal `gorm:"column:other_fees;type:decimal(10,2);not null;default:0.00" json:"other_fees"`
	TotalAmount              decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	AmountPaid               decimal.Decimal `gorm:"column:amount_paid;type:decimal(10,2);not null;default:0.00" json:"amount_paid"`
	AmountPending            decimal.Decimal `gorm:"column:amount_pending;type:decimal(10,2);not null;default:0.00" json:"amount_pending"`
	CarryForwardFromPrevious decimal.Decimal `gorm:"column:carry_forward_from_previous;type:decimal(10,2);not null;default:0.00" json:"carry_forward_from_previous"`
	CarryForwardToNext       decimal.Decimal `gorm:"column:carry_forward_to_next;type:decimal(10,2);not null;default:0.00" json:"carry_forward_to_next"`
	DueDate                  string          `gorm:"column:due_date;type:date" json:"due_date"`
	PaymentStatus            string          `gorm:"column:payment_status;not null;default:pending" json:"payment_status"`
	CreatedAt                time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	Patient                  Patient         `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (MonthlyRecord) TableName() string {
	return "patient_monthly_records"
}

// PaymentEvent model. Append-only: corrections are new offsetting events,
// never edits. Month/Year attribute the payment to a specific billing
// period; when absent the engine settles the oldest pending month first.
type PaymentEvent struct {
	ID          uint            `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID   string          `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Amount      decimal.Decimal `gorm:"column:amount_paid;type:decimal(10,2);not null" json:"amount_paid"`
	PaymentDate string          `gorm:"column:payment_date;type:date;not null;index" json:"payment_date"`
	PaymentMode string          `gorm:"column:payment_mode;not null;default:'Cash'" json:"payment_mode"`
	Type        string          `gorm:"column:type;not null;default:'fee_payment'" json:"type"`
	Month       *int            `gorm:"column:month" json:"month,omitempty"`
	Year        *int            `gorm:"column:year" json:"year,omitempty"`
	Notes       string          `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient     Patient         `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (PaymentEvent) TableName() string {
	return "patient_payment_history"
}

// StatementMonth is one entry of a patient statement: the reconciled
// monthly record with the payments applied to it.
type StatementMonth struct {
	MonthlyRecord
	Payments []PaymentEvent `json:"payments"`
}
