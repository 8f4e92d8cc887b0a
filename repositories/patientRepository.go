package repositories

import (
	"context"

	"github.com/arthurhenrique02/doc-pay-manager/models"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id int64) (*models.Patient, error)
	IDExists(ctx context.Context, id int64) (bool, error)
}

type patientRepository struct {
	base *Repository[models.Patient]
}

func NewPatientRepository(db *gorm.DB) (PatientRepository, error) {
	base, err := NewRepository[models.Patient](db)
	if err != nil {
		return nil, err
	}
	return &patientRepository{base: base}, nil
}

func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) error {
	return r.base.Create(ctx, patient)
}

func (r *patientRepository) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	return r.base.GetByID(ctx, id)
}

func (r *patientRepository) IDExists(ctx context.Context, id int64) (bool, error) {
	return r.base.Exists(ctx, Criteria{"id": id})
}
