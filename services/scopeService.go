package services

import (
	"context"

	"github.com/arthurhenrique02/doc-pay-manager/repositories"
)

// ScopeService decides which doctor's records an identity may read or
// write. Every doctor-scoped report and procedure registration goes
// through the same decision procedure.
type ScopeService interface {
	EffectiveDoctorID(ctx context.Context, identity *Identity, requestedDoctorID *int64) (int64, error)
	OptionalScope(ctx context.Context, identity *Identity, requestedDoctorID *int64) (*int64, error)
}

type scopeService struct {
	doctorRepo repositories.DoctorRepository
}

func NewScopeService(doctorRepo repositories.DoctorRepository) ScopeService {
	return &scopeService{doctorRepo: doctorRepo}
}

// EffectiveDoctorID resolves the mandatory doctor scope for a request.
//
// Superusers act on any doctor they name; without one they fall back to
// their own doctor and fail with ErrScopeRequired when none exists.
// Non-superusers are always pinned to their own doctor: no doctor row
// fails with ErrDoctorNotFound, and naming any other doctor fails with
// ErrForbidden.
func (s *scopeService) EffectiveDoctorID(ctx context.Context, identity *Identity, requestedDoctorID *int64) (int64, error) {
	currentDoctor, err := s.doctorRepo.GetByUserID(ctx, identity.ID)
	if err != nil {
		return 0, err
	}

	if identity.IsSuperuser {
		if requestedDoctorID != nil {
			return *requestedDoctorID, nil
		}
		if currentDoctor != nil {
			return currentDoctor.ID, nil
		}
		return 0, ErrScopeRequired
	}

	if currentDoctor == nil {
		return 0, ErrDoctorNotFound
	}
	if requestedDoctorID != nil && *requestedDoctorID != currentDoctor.ID {
		return 0, ErrForbidden
	}
	return currentDoctor.ID, nil
}

// OptionalScope resolves the doctor scope for reports where a superuser
// may query clinic-wide. A superuser naming no doctor gets a nil scope;
// every other case follows EffectiveDoctorID.
func (s *scopeService) OptionalScope(ctx context.Context, identity *Identity, requestedDoctorID *int64) (*int64, error) {
	if identity.IsSuperuser && requestedDoctorID == nil {
		return nil, nil
	}
	doctorID, err := s.EffectiveDoctorID(ctx, identity, requestedDoctorID)
	if err != nil {
		return nil, err
	}
	return &doctorID, nil
}
