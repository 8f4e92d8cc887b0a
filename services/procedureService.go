package services

import (
	"context"
	"time"

	"github.com/arthurhenrique02/doc-pay-manager/models"
	"github.com/arthurhenrique02/doc-pay-manager/repositories"
	"github.com/arthurhenrique02/doc-pay-manager/utils"
)

const dateLayout = "2006-01-02"

type ProcedureService interface {
	Register(ctx context.Context, identity *Identity, procedure *models.Procedure) (*models.Procedure, error)
	DailyReport(ctx context.Context, identity *Identity, requestedDoctorID *int64) ([]models.Procedure, error)
	GlossedReport(ctx context.Context, identity *Identity, start, end string, requestedDoctorID *int64) ([]models.Procedure, error)
	FinancialReport(ctx context.Context, identity *Identity, doctorID int64) ([]models.FinancialReportRow, error)
}

type procedureService struct {
	procedureRepo repositories.ProcedureRepository
	doctorRepo    repositories.DoctorRepository
	patientRepo   repositories.PatientRepository
	scope         ScopeService
}

func NewProcedureService(
	procedureRepo repositories.ProcedureRepository,
	doctorRepo repositories.DoctorRepository,
	patientRepo repositories.PatientRepository,
	scope ScopeService,
) ProcedureService {
	return &procedureService{
		procedureRepo: procedureRepo,
		doctorRepo:    doctorRepo,
		patientRepo:   patientRepo,
		scope:         scope,
	}
}

// Register persists a new billing event. The scope policy, not the caller,
// is authoritative over doctor_id: a superuser must name both doctor and
// patient, while a non-superuser's doctor_id is always overwritten with
// their own doctor before validation.
func (s *procedureService) Register(ctx context.Context, identity *Identity, procedure *models.Procedure) (*models.Procedure, error) {
	if identity.IsSuperuser {
		if procedure.DoctorID == 0 || procedure.PatientID == 0 {
			return nil, ErrMissingFields
		}
	} else {
		currentDoctor, err := s.doctorRepo.GetByUserID(ctx, identity.ID)
		if err != nil {
			return nil, err
		}
		if currentDoctor == nil {
			return nil, ErrDoctorNotFound
		}
		procedure.DoctorID = currentDoctor.ID
	}

	if err := utils.ValidateProcedureData(*procedure); err != nil {
		return nil, err
	}

	if exists, err := s.doctorRepo.IDExists(ctx, procedure.DoctorID); err != nil {
		return nil, err
	} else if !exists {
		return nil, &ValidationError{Field: "doctor_id", Message: "doctor does not exist"}
	}
	if exists, err := s.patientRepo.IDExists(ctx, procedure.PatientID); err != nil {
		return nil, err
	} else if !exists {
		return nil, &ValidationError{Field: "patient_id", Message: "patient does not exist"}
	}

	if err := s.procedureRepo.Create(ctx, procedure); err != nil {
		return nil, err
	}
	return procedure, nil
}

// DailyReport lists today's procedures for the effective doctor scope.
func (s *procedureService) DailyReport(ctx context.Context, identity *Identity, requestedDoctorID *int64) ([]models.Procedure, error) {
	doctorID, err := s.scope.EffectiveDoctorID(ctx, identity, requestedDoctorID)
	if err != nil {
		return nil, err
	}

	return s.procedureRepo.Filter(ctx, repositories.Criteria{
		"date":      time.Now().Format(dateLayout),
		"doctor_id": doctorID,
	})
}

// GlossedReport lists glossed procedures with dates in [start, end],
// doctor-scoped when a scope applies. Bound validation is left to the
// filter engine so an empty bound fails before any query runs.
func (s *procedureService) GlossedReport(ctx context.Context, identity *Identity, start, end string, requestedDoctorID *int64) ([]models.Procedure, error) {
	if err := utils.ValidateReportPeriod(start, end); err != nil {
		return nil, err
	}

	scope, err := s.scope.OptionalScope(ctx, identity, requestedDoctorID)
	if err != nil {
		return nil, err
	}

	criteria := repositories.Criteria{
		"date" + repositories.RangeSuffix: repositories.Range{Start: start, End: end},
		"payment_status":                  models.PaymentStatusGlossed,
	}
	if scope != nil {
		criteria["doctor_id"] = *scope
	}

	return s.procedureRepo.Filter(ctx, criteria)
}

// FinancialReport aggregates a doctor's procedures by payment status. The
// scope is mandatory: every financial report is for exactly one doctor.
func (s *procedureService) FinancialReport(ctx context.Context, identity *Identity, doctorID int64) ([]models.FinancialReportRow, error) {
	effectiveID, err := s.scope.EffectiveDoctorID(ctx, identity, &doctorID)
	if err != nil {
		return nil, err
	}
	return s.procedureRepo.FinancialReport(ctx, effectiveID)
}
