package routes

import (
	"CareLedger/cache"
	"CareLedger/config"
	"CareLedger/controllers"
	"CareLedger/handlers"
	"CareLedger/middlewares"
	"CareLedger/repositories"
	"CareLedger/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	ledgerRepo := repositories.NewLedgerRepository(db, cache, config.GetBillingDueDay())
	medicalRecordRepo := repositories.NewMedicalRecordRepository(cache)
	patientRepo := repositories.NewPatientRepository(cache, ledgerRepo, medicalRecordRepo)
	userRepo := repositories.NewUserRepository(db, cache)

	patientService := services.NewPatientService(patientRepo)
	ledgerService := services.NewLedgerService(ledgerRepo)
	userService := services.NewUserService(userRepo)

	patientHandler := handlers.NewPatientHandler(patientService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	authHandler := handlers.NewAuthHandler(userService)
	doctorHandler := handlers.NewDoctorHandler(services.NewDoctorService(repositories.NewDoctorRepository(cache)))
	medicalRecordHandler := handlers.NewMedicalRecordHandler(services.NewMedicalRecordService(medicalRecordRepo))
	staffHandler := handlers.NewStaffHandler(services.NewStaffService(repositories.NewStaffRepository(cache)))
	leadHandler := handlers.NewLeadHandler(services.NewLeadService(repositories.NewLeadRepository(cache)))
	inventoryHandler := handlers.NewInventoryHandler(services.NewInventoryService(repositories.NewInventoryRepository(cache)))
	settingsHandler := handlers.NewSettingsHandler(services.NewSettingsService(repositories.NewSettingsRepository(cache)))

	// Register routes
	controllers.SetupCRMRoutes(
		router,
		patientHandler,
		doctorHandler,
		ledgerHandler,
		medicalRecordHandler,
		staffHandler,
		leadHandler,
		inventoryHandler,
		settingsHandler,
	)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
