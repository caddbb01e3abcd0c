package booking

import (
	"context"
	"time"

	"github.com/AstralPath/consult-scheduler/internal/audit"
	"github.com/AstralPath/consult-scheduler/internal/cache"
	domain "github.com/AstralPath/consult-scheduler/internal/domain/booking"
	"github.com/AstralPath/consult-scheduler/internal/httperr"
	"github.com/AstralPath/consult-scheduler/internal/models"
	"github.com/AstralPath/consult-scheduler/internal/payments"
)

type UpdateBookingStatusInput struct {
	BookingID       string
	Actor           domain.Actor
	Target          domain.Status
	RejectionReason string
}

type UpdateBookingStatus struct {
	repo        domain.Repository
	coordinator *payments.Coordinator
	audit       *audit.Dispatcher
	cache       *cache.SlotCache
	now         func() time.Time
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	coordinator *payments.Coordinator,
	audit *audit.Dispatcher,
	slotCache *cache.SlotCache,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:        repo,
		coordinator: coordinator,
		audit:       audit,
		cache:       slotCache,
		now:         time.Now,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	in UpdateBookingStatusInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	// --------------------------------------------------
	// Plan: pure authorization + graph check, returns
	// the payment effect the transition carries
	// --------------------------------------------------
	effect, err := domain.PlanTransition(b, in.Actor, in.Target, in.RejectionReason)
	if err != nil {
		return nil, err
	}

	// Guards that must short-circuit before any provider call.
	if in.Target == domain.StatusApproved {
		switch domain.PaymentStatus(b.PaymentStatus) {
		case domain.PaymentCaptured:
			return nil, httperr.ErrBusiness(httperr.CodeAlreadyCaptured)
		case domain.PaymentCancelled:
			return nil, httperr.ErrBusiness(httperr.CodeAuthorizationExpired)
		}
	}

	// --------------------------------------------------
	// Effect first, commit second: a capture the provider
	// did not confirm leaves the status untouched
	// --------------------------------------------------
	if err := uc.coordinator.Execute(ctx, b, effect); err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	b.Status = string(in.Target)

	switch in.Target {
	case domain.StatusApproved:
		b.ApprovedAt = &now
	case domain.StatusRejected:
		b.RejectionReason = in.RejectionReason
	case domain.StatusCancelled:
		b.CancelledAt = &now
	case domain.StatusCompleted:
		b.CompletedAt = &now
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.UserID,
		Action:   "booking_" + string(in.Target),
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]any{
			"payment_status": b.PaymentStatus,
		},
	})

	return b, nil
}
