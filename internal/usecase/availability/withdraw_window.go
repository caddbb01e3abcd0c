package availability

import (
	"context"

	"github.com/AstralPath/consult-scheduler/internal/audit"
	domain "github.com/AstralPath/consult-scheduler/internal/domain/availability"
	bookingdomain "github.com/AstralPath/consult-scheduler/internal/domain/booking"
	"github.com/AstralPath/consult-scheduler/internal/httperr"
	"github.com/AstralPath/consult-scheduler/internal/models"
)

type WithdrawWindow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewWithdrawWindow(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *WithdrawWindow {
	return &WithdrawWindow{
		repo:  repo,
		audit: audit,
	}
}

func (uc *WithdrawWindow) Execute(
	ctx context.Context,
	windowID string,
	actor bookingdomain.Actor,
) (*models.AvailabilityWindow, error) {

	w, err := uc.repo.GetWindow(ctx, windowID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if !actor.Role.CanManageSchedule() || w.SuperuserID != actor.UserID {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	count, err := uc.repo.CountActiveBookingsForWindow(ctx, windowID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, httperr.ErrBusiness(httperr.CodeHasActiveBookings)
	}

	if err := uc.repo.Withdraw(ctx, w); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "availability_window_withdrawn",
		Entity:   "availability_window",
		EntityID: w.ID,
	})

	return w, nil
}
