package handlers

import (
	"net/http"

	"github.com/arthurhenrique02/doc-pay-manager/middlewares"
	"github.com/arthurhenrique02/doc-pay-manager/models"
	"github.com/arthurhenrique02/doc-pay-manager/services"
	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	service services.DoctorService
}

func NewDoctorHandler(service services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var payload struct {
		Name   string `json:"name"`
		UserID *int64 `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	doctor := models.Doctor{Name: payload.Name, UserID: payload.UserID}
	if err := h.service.Register(c.Request.Context(), &doctor); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, doctor, http.StatusCreated)
}
