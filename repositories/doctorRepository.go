package repositories

import (
	"context"

	"github.com/arthurhenrique02/doc-pay-manager/models"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByID(ctx context.Context, id int64) (*models.Doctor, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Doctor, error)
	IDExists(ctx context.Context, id int64) (bool, error)
}

type doctorRepository struct {
	base *Repository[models.Doctor]
}

func NewDoctorRepository(db *gorm.DB) (DoctorRepository, error) {
	base, err := NewRepository[models.Doctor](db)
	if err != nil {
		return nil, err
	}
	return &doctorRepository{base: base}, nil
}

func (r *doctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	return r.base.Create(ctx, doctor)
}

func (r *doctorRepository) GetByID(ctx context.Context, id int64) (*models.Doctor, error) {
	return r.base.GetByID(ctx, id)
}

// GetByUserID returns the doctor associated with a login identity, or nil
// when the user has no doctor row. At most one doctor exists per user.
func (r *doctorRepository) GetByUserID(ctx context.Context, userID int64) (*models.Doctor, error) {
	doctors, err := r.base.Filter(ctx, Criteria{"user_id": userID})
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, nil
	}
	return &doctors[0], nil
}

func (r *doctorRepository) IDExists(ctx context.Context, id int64) (bool, error) {
	return r.base.Exists(ctx, Criteria{"id": id})
}
