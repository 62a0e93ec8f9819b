package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/garage-scheduler/internal/audit"
	"github.com/BruksfildServices01/garage-scheduler/internal/cache"
	"github.com/BruksfildServices01/garage-scheduler/internal/config"
	"github.com/BruksfildServices01/garage-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/garage-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/garage-scheduler/internal/middleware"
	ucBooking "github.com/BruksfildServices01/garage-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db, cfg.StrictBooking)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	rosterCache := cache.NewRoster(cfg.RedisURL)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucBooking.NewUpdateAppointment(
		bookingRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucBooking.NewDeleteAppointment(
		bookingRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucBooking.NewListAppointments(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
	)

	mechanicHandler := handlers.NewMechanicHandler(
		bookingRepo,
		cfg,
		rosterCache,
		auditDispatcher,
	)

	publicHandler := handlers.NewPublicHandler(
		createAppointmentUC,
		bookingRepo,
		rosterCache,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC BOOKING
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/mechanics", publicHandler.ListMechanics)
			publicAPI.GET("/validation/appointment", publicHandler.ValidationContract)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// MECHANICS
			// ------------------------------
			secured.GET("/mechanics", mechanicHandler.List)
			secured.POST("/mechanics", mechanicHandler.Create)
			secured.PATCH("/mechanics/:id", mechanicHandler.Update)
			secured.DELETE("/mechanics/:id", mechanicHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
