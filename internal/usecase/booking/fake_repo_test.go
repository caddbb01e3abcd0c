package booking

import (
	"context"
	"errors"
	"time"

	availabilitydomain "github.com/AstralPath/consult-scheduler/internal/domain/availability"
	domain "github.com/AstralPath/consult-scheduler/internal/domain/booking"
	"github.com/AstralPath/consult-scheduler/internal/models"
	"github.com/AstralPath/consult-scheduler/internal/payments"
)

type fakeBookingRepo struct {
	booking   *models.Booking
	getErr    error
	createErr error
	created   []models.Booking
	updated   []models.Booking
}

var _ domain.Repository = (*fakeBookingRepo)(nil)

func (f *fakeBookingRepo) CreateWithConflictCheck(_ context.Context, b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = "b-1"
	f.created = append(f.created, *b)
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ string) (*models.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, b *models.Booking) error {
	f.updated = append(f.updated, *b)
	return nil
}

func (f *fakeBookingRepo) ListForUser(_ context.Context, _ uint, _ domain.ListFilter) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ListForSuperuser(_ context.Context, _ uint, _ domain.ListFilter) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ListActiveBetween(_ context.Context, _, _ time.Time) ([]models.Booking, error) {
	return nil, nil
}

type fakeWindowRepo struct {
	window *models.AvailabilityWindow
	getErr error
}

var _ availabilitydomain.Repository = (*fakeWindowRepo)(nil)

func (f *fakeWindowRepo) CreateWindowIfNoOverlap(_ context.Context, _ *models.AvailabilityWindow) error {
	return nil
}
func (f *fakeWindowRepo) CreateWindows(_ context.Context, _ []models.AvailabilityWindow) error {
	return nil
}
func (f *fakeWindowRepo) GetWindow(_ context.Context, _ string) (*models.AvailabilityWindow, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.window, nil
}
func (f *fakeWindowRepo) ListFutureAvailable(_ context.Context, _ *uint, _ time.Time) ([]models.AvailabilityWindow, error) {
	return nil, nil
}
func (f *fakeWindowRepo) ListAvailableBetween(_ context.Context, _ uint, _, _ time.Time) ([]models.AvailabilityWindow, error) {
	return nil, nil
}
func (f *fakeWindowRepo) Withdraw(_ context.Context, _ *models.AvailabilityWindow) error {
	return nil
}
func (f *fakeWindowRepo) CountActiveBookingsForWindow(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

type fakeProvider struct {
	captureRes *payments.Result
	captureErr error
	cancelRes  *payments.Result
	cancelErr  error

	captured []string
	released []string
}

var _ payments.Provider = (*fakeProvider)(nil)

func (p *fakeProvider) Authorize(_ context.Context, _ payments.AuthorizeInput) (*payments.Result, error) {
	return nil, errors.New("not used")
}

func (p *fakeProvider) Capture(_ context.Context, intentID string) (*payments.Result, error) {
	p.captured = append(p.captured, intentID)
	return p.captureRes, p.captureErr
}

func (p *fakeProvider) Cancel(_ context.Context, intentID string) (*payments.Result, error) {
	p.released = append(p.released, intentID)
	return p.cancelRes, p.cancelErr
}
