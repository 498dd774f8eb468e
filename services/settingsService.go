package services

import (
	"CareLedger/models"
	"CareLedger/repositories"
	"context"
)

type SettingsService struct {
	repository *repositories.SettingsRepository
}

func NewSettingsService(repository *repositories.SettingsRepository) *SettingsService {
	return &SettingsService{repository: repository}
}

func (s *SettingsService) GetAll(ctx context.Context) ([]models.Setting, error) {
	return s.repository.GetAll(ctx)
}

func (s *SettingsService) Get(ctx context.Context, key string) (*models.Setting, error) {
	return s.repository.Get(ctx, key)
}

func (s *SettingsService) Upsert(ctx context.Context, setting *models.Setting) error {
	return s.repository.Upsert(ctx, setting)
}
