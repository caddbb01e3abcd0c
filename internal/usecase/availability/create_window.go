package availability

import (
	"context"
	"time"

	"github.com/AstralPath/consult-scheduler/internal/audit"
	domain "github.com/AstralPath/consult-scheduler/internal/domain/availability"
	"github.com/AstralPath/consult-scheduler/internal/httperr"
	"github.com/AstralPath/consult-scheduler/internal/models"
)

type CreateWindowInput struct {
	SuperuserID uint
	StartTime   time.Time
	EndTime     time.Time
}

type CreateWindow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateWindow(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateWindow {
	return &CreateWindow{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateWindow) Execute(
	ctx context.Context,
	in CreateWindowInput,
) (*models.AvailabilityWindow, error) {

	if !in.EndTime.After(in.StartTime) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	w := &models.AvailabilityWindow{
		SuperuserID: in.SuperuserID,
		StartTime:   in.StartTime.UTC(),
		EndTime:     in.EndTime.UTC(),
		IsAvailable: true,
	}

	if err := uc.repo.CreateWindowIfNoOverlap(ctx, w); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.SuperuserID,
		Action:   "availability_window_created",
		Entity:   "availability_window",
		EntityID: w.ID,
	})

	return w, nil
}
