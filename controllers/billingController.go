package controllers

import (
	"github.com/arthurhenrique02/doc-pay-manager/handlers"
	"github.com/arthurhenrique02/doc-pay-manager/middlewares"
	"github.com/arthurhenrique02/doc-pay-manager/services"
	"github.com/gin-gonic/gin"
)

// SetupBillingRoutes registers the doctor, patient and procedure routes.
// Registration of doctors and patients is open; everything touching
// procedures requires a resolved bearer token.
func SetupBillingRoutes(
	router *gin.Engine,
	authService services.AuthService,
	doctorHandler *handlers.DoctorHandler,
	patientHandler *handlers.PatientHandler,
	procedureHandler *handlers.ProcedureHandler,
) {
	router.POST("/doctor/registry", doctorHandler.CreateDoctor)
	router.POST("/patient/registry", patientHandler.CreatePatient)

	procedureGroup := router.Group("/procedure").Use(middlewares.TokenAuthMiddleware(authService))
	{
		procedureGroup.POST("/registry", procedureHandler.CreateProcedure)
		procedureGroup.GET("/report/daily", procedureHandler.DailyReport)
		procedureGroup.POST("/report/glossed", procedureHandler.GlossedReport)
		procedureGroup.GET("/report/financial/:doctor_id", procedureHandler.FinancialReport)
	}
}
