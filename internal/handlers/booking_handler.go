package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/AstralPath/consult-scheduler/internal/domain/booking"
	"github.com/AstralPath/consult-scheduler/internal/httperr"
	"github.com/AstralPath/consult-scheduler/internal/httpresp"
	"github.com/AstralPath/consult-scheduler/internal/middleware"
	ucBooking "github.com/AstralPath/consult-scheduler/internal/usecase/booking"
)

type BookingHandler struct {
	repo     domain.Repository
	createUC *ucBooking.CreateBooking
	updateUC *ucBooking.UpdateBookingStatus
}

func NewBookingHandler(
	repo domain.Repository,
	createUC *ucBooking.CreateBooking,
	updateUC *ucBooking.UpdateBookingStatus,
) *BookingHandler {
	return &BookingHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	SlotID          string    `json:"slot_id" binding:"required"`
	ScheduledStart  time.Time `json:"scheduled_start" binding:"required"`
	ScheduledEnd    time.Time `json:"scheduled_end" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required"`

	UserName  string `json:"user_name" binding:"required"`
	UserEmail string `json:"user_email" binding:"required"`
	UserPhone string `json:"user_phone"`

	BirthDate         string `json:"birth_date"`
	BirthTime         string `json:"birth_time"`
	BirthPlace        string `json:"birth_place"`
	ConsultationTopic string `json:"consultation_topic"`
	AdditionalNotes   string `json:"additional_notes"`

	PaymentIntentID string `json:"payment_intent_id"`
}

type UpdateBookingRequest struct {
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejection_reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request",
			"slot_id, scheduled_start, scheduled_end, duration_minutes, user_name and user_email are required.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:          actor.UserID,
		WindowID:        req.SlotID,
		ScheduledStart:  req.ScheduledStart,
		ScheduledEnd:    req.ScheduledEnd,
		DurationMinutes: req.DurationMinutes,

		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		UserPhone: req.UserPhone,

		BirthDate:         req.BirthDate,
		BirthTime:         req.BirthTime,
		BirthPlace:        req.BirthPlace,
		ConsultationTopic: req.ConsultationTopic,
		AdditionalNotes:   req.AdditionalNotes,

		PaymentIntentID: req.PaymentIntentID,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_create_booking", "Failed to create booking.")
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// GET
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	id := c.Param("id")

	b, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "not_found", "Booking not found.")
		return
	}

	isOwningSuperuser := actor.Role.CanManageSchedule() && b.SuperuserID == actor.UserID
	if b.UserID != actor.UserID && !isOwningSuperuser {
		httperr.Forbidden(c, "forbidden", "You are not allowed to view this booking.")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// LIST (role-scoped)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var statuses []string
	if raw := c.Query("status"); raw != "" {
		statuses = strings.Split(raw, ",")
	}
	filter := domain.ListFilter{Statuses: statuses}

	if c.Query("role") == "superuser" && actor.Role.CanManageSchedule() {
		bs, err := h.repo.ListForSuperuser(c.Request.Context(), actor.UserID, filter)
		if err != nil {
			httperr.Internal(c, "failed_to_list_bookings", "Failed to fetch bookings.")
			return
		}
		httpresp.List(c, bs)
		return
	}

	bs, err := h.repo.ListForUser(c.Request.Context(), actor.UserID, filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to fetch bookings.")
		return
	}
	httpresp.List(c, bs)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	id := c.Param("id")

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "status is required.")
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), ucBooking.UpdateBookingStatusInput{
		BookingID:       id,
		Actor:           actor,
		Target:          domain.Status(req.Status),
		RejectionReason: strings.TrimSpace(req.RejectionReason),
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_update_booking", "Failed to update booking.")
		return
	}

	httpresp.OK(c, b)
}
