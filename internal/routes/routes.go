package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AstralPath/consult-scheduler/internal/audit"
	"github.com/AstralPath/consult-scheduler/internal/cache"
	"github.com/AstralPath/consult-scheduler/internal/config"
	"github.com/AstralPath/consult-scheduler/internal/handlers"
	infraRepo "github.com/AstralPath/consult-scheduler/internal/infra/repository"
	"github.com/AstralPath/consult-scheduler/internal/middleware"
	"github.com/AstralPath/consult-scheduler/internal/payments"
	ucAvailability "github.com/AstralPath/consult-scheduler/internal/usecase/availability"
	ucBooking "github.com/AstralPath/consult-scheduler/internal/usecase/booking"
	ucSlots "github.com/AstralPath/consult-scheduler/internal/usecase/slots"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	slotCache := cache.NewSlotCache(cfg.RedisAddr)

	var provider payments.Provider
	if cfg.MPAccessToken != "" {
		mp, err := payments.NewMercadoPagoProvider(cfg.MPAccessToken)
		if err != nil {
			log.Fatalf("failed to init payment provider: %v", err)
		}
		provider = mp
	} else {
		log.Println("MP_ACCESS_TOKEN not set, payment operations disabled")
	}
	coordinator := payments.NewCoordinator(provider)

	// ======================================================
	// USE CASES
	// ======================================================
	createWindowUC := ucAvailability.NewCreateWindow(availabilityRepo, auditDispatcher)
	withdrawWindowUC := ucAvailability.NewWithdrawWindow(availabilityRepo, auditDispatcher)
	generateBulkUC := ucAvailability.NewGenerateBulk(availabilityRepo, auditDispatcher)

	computeSlotsUC := ucSlots.NewComputeSlots(availabilityRepo, bookingRepo, slotCache)

	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, availabilityRepo, auditDispatcher, slotCache)
	updateBookingUC := ucBooking.NewUpdateBookingStatus(bookingRepo, coordinator, auditDispatcher, slotCache)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(
		availabilityRepo,
		createWindowUC,
		withdrawWindowUC,
		generateBulkUC,
	)
	slotsHandler := handlers.NewSlotsHandler(computeSlotsUC)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, createBookingUC, updateBookingUC)
	paymentHandler := handlers.NewPaymentHandler(db, provider)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/availability", availabilityHandler.List)
		api.GET("/availability/times", slotsHandler.Times)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings/payment-intent", paymentHandler.CreateIntent)
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id", bookingHandler.UpdateStatus)

			// ------------------------------
			// AVAILABILITY (superuser)
			// ------------------------------
			manage := secured.Group("/")
			manage.Use(middleware.RequireScheduleManager())
			{
				manage.POST("/availability", availabilityHandler.Create)
				manage.DELETE("/availability/:id", availabilityHandler.Withdraw)
				manage.POST("/availability/bulk", availabilityHandler.Bulk)

				manage.GET("/me/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
