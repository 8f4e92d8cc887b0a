package routes

import (
	"net/http"

	"github.com/arthurhenrique02/doc-pay-manager/cache"
	"github.com/arthurhenrique02/doc-pay-manager/config"
	"github.com/arthurhenrique02/doc-pay-manager/controllers"
	"github.com/arthurhenrique02/doc-pay-manager/handlers"
	"github.com/arthurhenrique02/doc-pay-manager/middlewares"
	"github.com/arthurhenrique02/doc-pay-manager/repositories"
	"github.com/arthurhenrique02/doc-pay-manager/services"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB, redisClient *redis.Client) (http.Handler, error) {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:8000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories
	userRepo, err := repositories.NewUserRepository(db, cache)
	if err != nil {
		return nil, err
	}
	doctorRepo, err := repositories.NewDoctorRepository(db)
	if err != nil {
		return nil, err
	}
	patientRepo, err := repositories.NewPatientRepository(db)
	if err != nil {
		return nil, err
	}
	procedureRepo, err := repositories.NewProcedureRepository(db, cache)
	if err != nil {
		return nil, err
	}

	// Initialize services
	authService := services.NewAuthService(userRepo, config)
	userService := services.NewUserService(userRepo, redisClient)
	doctorService := services.NewDoctorService(doctorRepo, userRepo)
	patientService := services.NewPatientService(patientRepo)
	scopeService := services.NewScopeService(doctorRepo)
	procedureService := services.NewProcedureService(procedureRepo, doctorRepo, patientRepo, scopeService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	patientHandler := handlers.NewPatientHandler(patientService)
	procedureHandler := handlers.NewProcedureHandler(procedureService)

	// Register routes
	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupBillingRoutes(router, authService, doctorHandler, patientHandler, procedureHandler)

	controllers.SetupRootRoute(router)

	return router, nil
}
