package booking

import (
	"context"
	"time"

	"github.com/AstralPath/consult-scheduler/internal/audit"
	"github.com/AstralPath/consult-scheduler/internal/cache"
	availabilitydomain "github.com/AstralPath/consult-scheduler/internal/domain/availability"
	domain "github.com/AstralPath/consult-scheduler/internal/domain/booking"
	"github.com/AstralPath/consult-scheduler/internal/httperr"
	"github.com/AstralPath/consult-scheduler/internal/models"
	"github.com/AstralPath/consult-scheduler/internal/validators"
)

type CreateBookingInput struct {
	UserID uint

	WindowID        string
	ScheduledStart  time.Time
	ScheduledEnd    time.Time
	DurationMinutes int

	UserName  string
	UserEmail string
	UserPhone string

	BirthDate         string
	BirthTime         string
	BirthPlace        string
	ConsultationTopic string
	AdditionalNotes   string

	// produced by the payment boundary before booking creation
	PaymentIntentID string
}

type CreateBooking struct {
	repo    domain.Repository
	windows availabilitydomain.Repository
	audit   *audit.Dispatcher
	cache   *cache.SlotCache
	now     func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	windows availabilitydomain.Repository,
	audit *audit.Dispatcher,
	slotCache *cache.SlotCache,
) *CreateBooking {
	return &CreateBooking{
		repo:    repo,
		windows: windows,
		audit:   audit,
		cache:   slotCache,
		now:     time.Now,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Field validation
	// --------------------------------------------------
	if in.WindowID == "" || in.ScheduledStart.IsZero() || in.ScheduledEnd.IsZero() ||
		in.UserName == "" || in.UserEmail == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	if in.DurationMinutes != 30 && in.DurationMinutes != 60 && in.DurationMinutes != 90 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	if !validators.IsEmailFormatValid(in.UserEmail) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	if !in.ScheduledEnd.After(in.ScheduledStart) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	// --------------------------------------------------
	// Window checks
	// --------------------------------------------------
	w, err := uc.windows.GetWindow(ctx, in.WindowID)
	if err != nil || !w.IsAvailable {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	start := in.ScheduledStart.UTC()
	end := in.ScheduledEnd.UTC()

	if !start.After(uc.now()) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	if start.Before(w.StartTime) || end.After(w.EndTime) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	// --------------------------------------------------
	// Insert; the repository re-checks overlap inside a
	// serializing transaction
	// --------------------------------------------------
	paymentStatus := domain.PaymentNone
	if in.PaymentIntentID != "" {
		paymentStatus = domain.PaymentAuthorized
	}

	b := &models.Booking{
		WindowID:        w.ID,
		UserID:          in.UserID,
		SuperuserID:     w.SuperuserID,
		ScheduledStart:  start,
		ScheduledEnd:    end,
		DurationMinutes: in.DurationMinutes,
		Status:          string(domain.InitialStatus()),

		UserName:  in.UserName,
		UserEmail: in.UserEmail,
		UserPhone: in.UserPhone,

		BirthDate:         in.BirthDate,
		BirthTime:         in.BirthTime,
		BirthPlace:        in.BirthPlace,
		ConsultationTopic: in.ConsultationTopic,
		AdditionalNotes:   in.AdditionalNotes,

		PaymentIntentID: in.PaymentIntentID,
		PaymentStatus:   string(paymentStatus),
	}

	if err := uc.repo.CreateWithConflictCheck(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
