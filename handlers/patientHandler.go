package handlers

import (
	"net/http"

	"github.com/arthurhenrique02/doc-pay-manager/middlewares"
	"github.com/arthurhenrique02/doc-pay-manager/models"
	"github.com/arthurhenrique02/doc-pay-manager/services"
	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service services.PatientService
}

func NewPatientHandler(service services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	patient := models.Patient{Name: payload.Name}
	if err := h.service.Register(c.Request.Context(), &patient); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, patient, http.StatusCreated)
}
