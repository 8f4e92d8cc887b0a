package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/arthurhenrique02/doc-pay-manager/middlewares"
	"github.com/arthurhenrique02/doc-pay-manager/models"
	"github.com/arthurhenrique02/doc-pay-manager/services"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type ProcedureHandler struct {
	service services.ProcedureService
}

func NewProcedureHandler(service services.ProcedureService) *ProcedureHandler {
	return &ProcedureHandler{service: service}
}

// CreateProcedure registers a new billing event for the caller's scope.
func (h *ProcedureHandler) CreateProcedure(c *gin.Context) {
	identity, err := middlewares.ExtractIdentityFromContext(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Could not validate credentials", http.StatusUnauthorized, err)
		return
	}

	var payload struct {
		DoctorID      int64   `json:"doctor_id"`
		PatientID     int64   `json:"patient_id"`
		Date          string  `json:"date"`
		Value         float64 `json:"value"`
		PaymentStatus string  `json:"payment_status"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	date, err := time.Parse(dateLayout, payload.Date)
	if err != nil {
		middlewares.HttpError(c, "date must be formatted as YYYY-MM-DD", http.StatusBadRequest, err)
		return
	}

	procedure := models.Procedure{
		DoctorID:      payload.DoctorID,
		PatientID:     payload.PatientID,
		Date:          date,
		Value:         payload.Value,
		PaymentStatus: payload.PaymentStatus,
	}

	created, err := h.service.Register(c.Request.Context(), identity, &procedure)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, created, http.StatusCreated)
}

// DailyReport lists today's procedures for the caller's doctor scope.
func (h *ProcedureHandler) DailyReport(c *gin.Context) {
	identity, err := middlewares.ExtractIdentityFromContext(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Could not validate credentials", http.StatusUnauthorized, err)
		return
	}

	requestedDoctorID, err := optionalDoctorID(c.Query("doctor_id"))
	if err != nil {
		middlewares.HttpError(c, "doctor_id must be an integer", http.StatusBadRequest, err)
		return
	}

	procedures, err := h.service.DailyReport(c.Request.Context(), identity, requestedDoctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, procedures, http.StatusOK)
}

// GlossedReport lists glossed procedures within a period.
func (h *ProcedureHandler) GlossedReport(c *gin.Context) {
	identity, err := middlewares.ExtractIdentityFromContext(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Could not validate credentials", http.StatusUnauthorized, err)
		return
	}

	var payload struct {
		Start    string `json:"start"`
		End      string `json:"end"`
		DoctorID *int64 `json:"doctor_id"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	procedures, err := h.service.GlossedReport(c.Request.Context(), identity, payload.Start, payload.End, payload.DoctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, procedures, http.StatusOK)
}

// FinancialReport aggregates one doctor's procedures by payment status.
func (h *ProcedureHandler) FinancialReport(c *gin.Context) {
	identity, err := middlewares.ExtractIdentityFromContext(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Could not validate credentials", http.StatusUnauthorized, err)
		return
	}

	doctorID, err := strconv.ParseInt(c.Param("doctor_id"), 10, 64)
	if err != nil {
		middlewares.HttpError(c, "Invalid doctor ID", http.StatusBadRequest, err)
		return
	}

	report, err := h.service.FinancialReport(c.Request.Context(), identity, doctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, report, http.StatusOK)
}

func optionalDoctorID(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
