package utils

import (
	"errors"
	"regexp"

	"github.com/arthurhenrique02/doc-pay-manager/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter, one digit, and one special character")
)

const dateLayout = "2006-01-02"

// ValidateUserData validates registration input using ozzo-validation.
func ValidateUserData(user models.User) error {
	return validation.ValidateStruct(&user,
		validation.Field(&user.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&user.Password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
	)
}

// ValidateDoctorData validates doctor registration input.
func ValidateDoctorData(doctor models.Doctor) error {
	return validation.ValidateStruct(&doctor,
		validation.Field(&doctor.Name, validation.Required, validation.Length(1, 255)),
	)
}

// ValidatePatientData validates patient registration input.
func ValidatePatientData(patient models.Patient) error {
	return validation.ValidateStruct(&patient,
		validation.Field(&patient.Name, validation.Required, validation.Length(1, 255)),
	)
}

// ValidateProcedureData validates a procedure payload before persistence.
// Referential existence of doctor and patient ids is checked separately by
// the service against the store.
func ValidateProcedureData(procedure models.Procedure) error {
	return validation.ValidateStruct(&procedure,
		validation.Field(&procedure.DoctorID, validation.Required),
		validation.Field(&procedure.PatientID, validation.Required),
		validation.Field(&procedure.Date, validation.Required),
		validation.Field(&procedure.Value, validation.Required, validation.Min(0.0)),
		validation.Field(&procedure.PaymentStatus,
			validation.Required,
			validation.In(models.PaymentStatusPaid, models.PaymentStatusPending, models.PaymentStatusGlossed)),
	)
}

// ValidateReportPeriod checks that non-empty report bounds are well-formed
// dates. Empty bounds pass through so the filter engine can reject them.
func ValidateReportPeriod(start, end string) error {
	return validation.Errors{
		"start": validation.Validate(start, validation.Date(dateLayout)),
		"end":   validation.Validate(end, validation.Date(dateLayout)),
	}.Filter()
}

// validatePassword checks the password for length and complexity.
func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var (
		lowercaseRegex = regexp.MustCompile(`[a-z]`)
		uppercaseRegex = regexp.MustCompile(`[A-Z]`)
		digitRegex     = regexp.MustCompile(`\d`)
		specialRegex   = regexp.MustCompile(`[@$!%*?&]`)
	)

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!specialRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}

	return nil
}
