package services

import (
	"CareLedger/models"
	"CareLedger/repositories"
	"context"
)

type StaffService struct {
	repository *repositories.StaffRepository
}

func NewStaffService(repository *repositories.StaffRepository) *StaffService {
	return &StaffService{repository: repository}
}

func (s *StaffService) Create(ctx context.Context, staff *models.Staff) error {
	return s.repository.Create(ctx, staff)
}

func (s *StaffService) GetAll(ctx context.Context) ([]models.Staff, error) {
	return s.repository.GetAll(ctx)
}

func (s *StaffService) Update(ctx context.Context, staff *models.Staff) error {
	return s.repository.Update(ctx, staff)
}

func (s *StaffService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}

func (s *StaffService) MarkAttendance(ctx context.Context, attendance *models.StaffAttendance) error {
	return s.repository.MarkAttendance(ctx, attendance)
}

func (s *StaffService) GetAttendance(ctx context.Context, staffID, from, to string) ([]models.StaffAttendance, error) {
	return s.repository.GetAttendance(ctx, staffID, from, to)
}
