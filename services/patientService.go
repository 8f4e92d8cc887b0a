package services

import (
	"context"

	"github.com/arthurhenrique02/doc-pay-manager/models"
	"github.com/arthurhenrique02/doc-pay-manager/repositories"
	"github.com/arthurhenrique02/doc-pay-manager/utils"
)

type PatientService interface {
	Register(ctx context.Context, patient *models.Patient) error
}

type patientService struct {
	patientRepo repositories.PatientRepository
}

func NewPatientService(patientRepo repositories.PatientRepository) PatientService {
	return &patientService{patientRepo: patientRepo}
}

func (s *patientService) Register(ctx context.Context, patient *models.Patient) error {
	if err := utils.ValidatePatientData(*patient); err != nil {
		return err
	}
	return s.patientRepo.Create(ctx, patient)
}
