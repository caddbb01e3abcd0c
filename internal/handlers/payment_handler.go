package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AstralPath/consult-scheduler/internal/httperr"
	"github.com/AstralPath/consult-scheduler/internal/middleware"
	"github.com/AstralPath/consult-scheduler/internal/models"
	"github.com/AstralPath/consult-scheduler/internal/payments"
)

type PaymentHandler struct {
	db       *gorm.DB
	provider payments.Provider
}

func NewPaymentHandler(db *gorm.DB, provider payments.Provider) *PaymentHandler {
	return &PaymentHandler{db: db, provider: provider}
}

type CreateIntentRequest struct {
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	CardToken       string `json:"card_token" binding:"required"`
	PaymentMethodID string `json:"payment_method_id"`
}

// CreateIntent is the payment boundary: it places an authorize-only hold for
// the consultation price and returns the intent id the booking request must
// carry. No booking exists yet at this point.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if h.provider == nil {
		httperr.Internal(c, "payments_unavailable", "Payment provider is not configured.")
		return
	}

	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "duration_minutes and card_token are required.")
		return
	}

	price, ok := payments.ConsultationPrices[req.DurationMinutes]
	if !ok {
		httperr.BadRequest(c, "invalid_request", "Duration must be 30, 60, or 90 minutes.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "not_found", "User not found.")
		return
	}

	res, err := h.provider.Authorize(c.Request.Context(), payments.AuthorizeInput{
		AmountCents:     price.AmountCents,
		Currency:        price.Currency,
		PayerEmail:      user.Email,
		CardToken:       req.CardToken,
		PaymentMethodID: req.PaymentMethodID,
		Description:     fmt.Sprintf("Consultation (%d min)", req.DurationMinutes),
	})
	if err != nil {
		httperr.Internal(c, "authorization_failed", "Failed to authorize payment.")
		return
	}

	if !res.Succeeded {
		httperr.PaymentRequired(c, "authorization_declined", "The payment could not be authorized.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"payment_intent_id": res.IntentID,
		"amount_cents":      price.AmountCents,
		"currency":          price.Currency,
		"status":            res.Status,
	})
}
