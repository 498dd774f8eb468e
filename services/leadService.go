package services

import (
	"CareLedger/models"
	"CareLedger/repositories"
	"context"
)

type LeadService struct {
	repository *repositories.LeadRepository
}

func NewLeadService(repository *repositories.LeadRepository) *LeadService {
	return &LeadService{repository: repository}
}

func (s *LeadService) Create(ctx context.Context, lead *models.Lead) error {
	return s.repository.Create(ctx, lead)
}

func (s *LeadService) GetAll(ctx context.Context, status string) ([]models.Lead, error) {
	return s.repository.GetAll(ctx, status)
}

func (s *LeadService) GetFollowUpsDue(ctx context.Context, date string) ([]models.Lead, error) {
	return s.repository.GetFollowUpsDue(ctx, date)
}

func (s *LeadService) Update(ctx context.Context, lead *models.Lead) error {
	return s.repository.Update(ctx, lead)
}

func (s *LeadService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
