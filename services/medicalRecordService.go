package services

import (
	"CareLedger/models"
	"CareLedger/repositories"
	"context"
)

type MedicalRecordService struct {
	repository *repositories.MedicalRecordRepository
}

func NewMedicalRecordService(repository *repositories.MedicalRecordRepository) *MedicalRecordService {
	return &MedicalRecordService{repository: repository}
}

func (s *MedicalRecordService) Create(ctx context.Context, record *models.MedicalRecord) error {
	return s.repository.Create(ctx, record)
}

func (s *MedicalRecordService) GetByPatient(ctx context.Context, patientID string) ([]models.MedicalRecord, error) {
	return s.repository.GetByPatient(ctx, patientID)
}

func (s *MedicalRecordService) Update(ctx context.Context, record *models.MedicalRecord) error {
	return s.repository.Update(ctx, record)
}

func (s *MedicalRecordService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
