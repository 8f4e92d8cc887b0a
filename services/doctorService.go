package services

import (
	"context"

	"github.com/arthurhenrique02/doc-pay-manager/models"
	"github.com/arthurhenrique02/doc-pay-manager/repositories"
	"github.com/arthurhenrique02/doc-pay-manager/utils"
)

type DoctorService interface {
	Register(ctx context.Context, doctor *models.Doctor) error
}

type doctorService struct {
	doctorRepo repositories.DoctorRepository
	userRepo   repositories.UserRepository
}

func NewDoctorService(doctorRepo repositories.DoctorRepository, userRepo repositories.UserRepository) DoctorService {
	return &doctorService{doctorRepo: doctorRepo, userRepo: userRepo}
}

// Register validates and persists a new doctor. When a login identity is
// attached, the referenced user must exist.
func (s *doctorService) Register(ctx context.Context, doctor *models.Doctor) error {
	if err := utils.ValidateDoctorData(*doctor); err != nil {
		return err
	}

	if doctor.UserID != nil {
		exists, err := s.userRepo.IDExists(ctx, *doctor.UserID)
		if err != nil {
			return err
		}
		if !exists {
			return &ValidationError{Field: "user_id", Message: "user does not exist"}
		}
	}

	return s.doctorRepo.Create(ctx, doctor)
}
