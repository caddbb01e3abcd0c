package payments

import (
	"context"
	"log"

	domain "github.com/AstralPath/consult-scheduler/internal/domain/booking"
	"github.com/AstralPath/consult-scheduler/internal/httperr"
	"github.com/AstralPath/consult-scheduler/internal/models"
)

// Coordinator maps booking lifecycle effects onto provider calls. The policy
// is asymmetric on purpose: a capture that the provider did not confirm
// blocks the transition (money must never be taken without a confirmed
// capture), while a failed release is absorbed into payment_status=failed so
// that a rejection or cancellation is never blocked by a moot cleanup step.
type Coordinator struct {
	provider Provider
}

func NewCoordinator(provider Provider) *Coordinator {
	return &Coordinator{provider: provider}
}

// Execute runs the payment effect of a planned transition, mutating only the
// booking's payment sub-state. It is a no-op unless the booking holds an
// authorized payment intent.
func (c *Coordinator) Execute(ctx context.Context, b *models.Booking, effect domain.Effect) error {
	if effect == domain.EffectNone {
		return nil
	}
	if b.PaymentIntentID == "" || domain.PaymentStatus(b.PaymentStatus) != domain.PaymentAuthorized {
		return nil
	}

	if c.provider == nil {
		// No provider configured: a hold can never be confirmed captured, and
		// a release that cannot be attempted is absorbed like any other
		// release failure.
		if effect == domain.EffectCapture {
			return httperr.ErrBusiness(httperr.CodeCaptureFailed)
		}
		b.PaymentStatus = string(domain.PaymentFailed)
		return nil
	}

	switch effect {
	case domain.EffectCapture:
		res, err := c.provider.Capture(ctx, b.PaymentIntentID)
		if err != nil {
			log.Printf("payments: capture error for intent %s: %v", b.PaymentIntentID, err)
			return httperr.ErrBusiness(httperr.CodeCaptureFailed)
		}
		if !res.Succeeded {
			log.Printf("payments: capture not confirmed for intent %s (status=%s)", b.PaymentIntentID, res.Status)
			return httperr.ErrBusiness(httperr.CodeCaptureFailed)
		}
		b.PaymentStatus = string(domain.PaymentCaptured)

	case domain.EffectRelease:
		res, err := c.provider.Cancel(ctx, b.PaymentIntentID)
		if err != nil {
			log.Printf("payments: release error for intent %s, marking failed: %v", b.PaymentIntentID, err)
			b.PaymentStatus = string(domain.PaymentFailed)
			return nil
		}
		if !res.Succeeded {
			log.Printf("payments: release not confirmed for intent %s (status=%s), marking failed", b.PaymentIntentID, res.Status)
			b.PaymentStatus = string(domain.PaymentFailed)
			return nil
		}
		b.PaymentStatus = string(domain.PaymentCancelled)
	}

	return nil
}
