package services

import (
	"CareLedger/models"
	"CareLedger/repositories"
	"context"
)

type InventoryService struct {
	repository *repositories.InventoryRepository
}

func NewInventoryService(repository *repositories.InventoryRepository) *InventoryService {
	return &InventoryService{repository: repository}
}

func (s *InventoryService) Create(ctx context.Context, item *models.MedicineItem) error {
	return s.repository.Create(ctx, item)
}

func (s *InventoryService) GetAll(ctx context.Context) ([]models.MedicineItem, error) {
	return s.repository.GetAll(ctx)
}

func (s *InventoryService) Update(ctx context.Context, item *models.MedicineItem) error {
	return s.repository.Update(ctx, item)
}

func (s *InventoryService) AdjustStock(ctx context.Context, id uint, delta int) error {
	return s.repository.AdjustStock(ctx, id, delta)
}

func (s *InventoryService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
