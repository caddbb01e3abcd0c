package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/AstralPath/consult-scheduler/internal/domain/booking"
	"github.com/AstralPath/consult-scheduler/internal/httperr"
	"github.com/AstralPath/consult-scheduler/internal/models"
)

type fakeProvider struct {
	captureRes *Result
	captureErr error
	cancelRes  *Result
	cancelErr  error

	captured []string
	released []string
}

func (p *fakeProvider) Authorize(_ context.Context, _ AuthorizeInput) (*Result, error) {
	return nil, errors.New("not used")
}

func (p *fakeProvider) Capture(_ context.Context, intentID string) (*Result, error) {
	p.captured = append(p.captured, intentID)
	return p.captureRes, p.captureErr
}

func (p *fakeProvider) Cancel(_ context.Context, intentID string) (*Result, error) {
	p.released = append(p.released, intentID)
	return p.cancelRes, p.cancelErr
}

func authorizedBooking() *models.Booking {
	return &models.Booking{
		PaymentIntentID: "12345",
		PaymentStatus:   string(domain.PaymentAuthorized),
	}
}

func TestCoordinatorCaptureSuccess(t *testing.T) {
	p := &fakeProvider{captureRes: &Result{Succeeded: true, Status: "approved"}}
	c := NewCoordinator(p)
	b := authorizedBooking()

	require.NoError(t, c.Execute(context.Background(), b, domain.EffectCapture))
	assert.Equal(t, string(domain.PaymentCaptured), b.PaymentStatus)
	assert.Equal(t, []string{"12345"}, p.captured)
}

func TestCoordinatorCaptureFailureBlocks(t *testing.T) {
	tests := []struct {
		name string
		p    *fakeProvider
	}{
		{"provider error", &fakeProvider{captureErr: errors.New("boom")}},
		{"not confirmed", &fakeProvider{captureRes: &Result{Succeeded: false, Status: "in_process"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCoordinator(tt.p)
			b := authorizedBooking()

			err := c.Execute(context.Background(), b, domain.EffectCapture)
			assert.True(t, httperr.IsBusiness(err, httperr.CodeCaptureFailed))
			// payment sub-state stays authorized so the capture can be retried
			assert.Equal(t, string(domain.PaymentAuthorized), b.PaymentStatus)
		})
	}
}

func TestCoordinatorReleaseSuccess(t *testing.T) {
	p := &fakeProvider{cancelRes: &Result{Succeeded: true, Status: "cancelled"}}
	c := NewCoordinator(p)
	b := authorizedBooking()

	require.NoError(t, c.Execute(context.Background(), b, domain.EffectRelease))
	assert.Equal(t, string(domain.PaymentCancelled), b.PaymentStatus)
	assert.Equal(t, []string{"12345"}, p.released)
}

func TestCoordinatorReleaseFailureAbsorbed(t *testing.T) {
	tests := []struct {
		name string
		p    *fakeProvider
	}{
		{"provider error", &fakeProvider{cancelErr: errors.New("boom")}},
		{"not confirmed", &fakeProvider{cancelRes: &Result{Succeeded: false, Status: "in_process"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCoordinator(tt.p)
			b := authorizedBooking()

			// a release that cannot be confirmed never blocks the transition
			require.NoError(t, c.Execute(context.Background(), b, domain.EffectRelease))
			assert.Equal(t, string(domain.PaymentFailed), b.PaymentStatus)
		})
	}
}

func TestCoordinatorNoOpWithoutHold(t *testing.T) {
	p := &fakeProvider{}
	c := NewCoordinator(p)

	// no effect planned
	b := authorizedBooking()
	require.NoError(t, c.Execute(context.Background(), b, domain.EffectNone))
	assert.Empty(t, p.captured)

	// unpaid booking
	b = &models.Booking{PaymentStatus: string(domain.PaymentNone)}
	require.NoError(t, c.Execute(context.Background(), b, domain.EffectCapture))
	assert.Empty(t, p.captured)

	// already captured
	b = &models.Booking{PaymentIntentID: "12345", PaymentStatus: string(domain.PaymentCaptured)}
	require.NoError(t, c.Execute(context.Background(), b, domain.EffectRelease))
	assert.Empty(t, p.released)
}

func TestCoordinatorNilProvider(t *testing.T) {
	c := NewCoordinator(nil)

	b := authorizedBooking()
	err := c.Execute(context.Background(), b, domain.EffectCapture)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeCaptureFailed))

	b = authorizedBooking()
	require.NoError(t, c.Execute(context.Background(), b, domain.EffectRelease))
	assert.Equal(t, string(domain.PaymentFailed), b.PaymentStatus)
}
