package availability

import (
	"context"
	"time"

	domain "github.com/AstralPath/consult-scheduler/internal/domain/availability"
	"github.com/AstralPath/consult-scheduler/internal/models"
)

// fakeWindowRepo is an in-memory stand-in for the gorm repository. Overlap
// semantics are the caller's concern in these tests; the fake only records
// what was asked of it.
type fakeWindowRepo struct {
	window      *models.AvailabilityWindow
	getErr      error
	existing    []models.AvailabilityWindow
	listErr     error
	createErr   error
	created     []models.AvailabilityWindow
	activeCount int64
	withdrawn   []string
}

var _ domain.Repository = (*fakeWindowRepo)(nil)

func (f *fakeWindowRepo) CreateWindowIfNoOverlap(_ context.Context, w *models.AvailabilityWindow) error {
	if f.createErr != nil {
		return f.createErr
	}
	w.ID = "w-1"
	f.created = append(f.created, *w)
	return nil
}

func (f *fakeWindowRepo) CreateWindows(_ context.Context, ws []models.AvailabilityWindow) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, ws...)
	return nil
}

func (f *fakeWindowRepo) GetWindow(_ context.Context, id string) (*models.AvailabilityWindow, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.window, nil
}

func (f *fakeWindowRepo) ListFutureAvailable(_ context.Context, _ *uint, _ time.Time) ([]models.AvailabilityWindow, error) {
	return f.existing, f.listErr
}

func (f *fakeWindowRepo) ListAvailableBetween(_ context.Context, _ uint, from, to time.Time) ([]models.AvailabilityWindow, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	// same intersection semantics as the gorm repository
	var ws []models.AvailabilityWindow
	for _, w := range f.existing {
		if w.StartTime.Before(to) && w.EndTime.After(from) {
			ws = append(ws, w)
		}
	}
	return ws, nil
}

func (f *fakeWindowRepo) Withdraw(_ context.Context, w *models.AvailabilityWindow) error {
	w.IsAvailable = false
	f.withdrawn = append(f.withdrawn, w.ID)
	return nil
}

func (f *fakeWindowRepo) CountActiveBookingsForWindow(_ context.Context, _ string) (int64, error) {
	return f.activeCount, nil
}
