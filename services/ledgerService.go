package services

import (
	"CareLedger/models"
	"CareLedger/repositories"
	"context"

	"github.com/shopspring/decimal"
)

type LedgerService struct {
	repository *repositories.LedgerRepository
}

func NewLedgerService(repository *repositories.LedgerRepository) *LedgerService {
	return &LedgerService{repository: repository}
}

func (s *LedgerService) RecordPayment(ctx context.Context, patientID string, event *models.PaymentEvent) ([]models.StatementMonth, error) {
	return s.repository.RecordPayment(ctx, patientID, event)
}

func (s *LedgerService) SetMonthlyFee(ctx context.Context, patientID string, month, year int, monthlyFee, otherFees decimal.Decimal) ([]models.StatementMonth, error) {
	return s.repository.SetMonthlyFee(ctx, patientID, month, year, monthlyFee, otherFees)
}

func (s *LedgerService) RecomputeMonth(ctx context.Context, patientID string, month, year int) ([]models.StatementMonth, error) {
	return s.repository.RecomputeMonth(ctx, patientID, month, year)
}

func (s *LedgerService) GetStatement(ctx context.Context, patientID string) ([]models.StatementMonth, error) {
	return s.repository.GetStatement(ctx, patientID)
}

func (s *LedgerService) GetPaymentHistory(ctx context.Context, patientID string) ([]models.PaymentEvent, error) {
	return s.repository.GetPaymentHistory(ctx, patientID)
}
