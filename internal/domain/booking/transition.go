package booking

import (
	"github.com/AstralPath/consult-scheduler/internal/httperr"
	"github.com/AstralPath/consult-scheduler/internal/models"
)

// Effect is the payment side effect a committed transition requires. The
// planner stays pure; the caller executes the effect and only commits the new
// status when the effect succeeded (capture) or was absorbed (release).
type Effect int

const (
	EffectNone Effect = iota
	EffectCapture
	EffectRelease
)

// PlanTransition validates that the actor may move the booking from its
// current status to target, and returns the payment effect the transition
// carries. No I/O, no mutation.
//
// Graph:
//
//	pending  -> approved | rejected | cancelled   (owning superuser)
//	pending  -> cancelled                         (requesting user)
//	approved -> completed | cancelled             (owning superuser)
//	rejected, cancelled, completed                (terminal)
func PlanTransition(b *models.Booking, actor Actor, target Status, reason string) (Effect, error) {
	if !target.Valid() || target == StatusPending {
		return EffectNone, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	current := Status(b.Status)

	isOwningSuperuser := actor.Role.CanManageSchedule() && b.SuperuserID == actor.UserID
	isRequester := b.UserID == actor.UserID && !isOwningSuperuser

	switch {
	case isRequester:
		if target != StatusCancelled {
			return EffectNone, httperr.ErrBusiness(httperr.CodeForbidden)
		}
		if current != StatusPending {
			return EffectNone, httperr.ErrBusiness(httperr.CodeInvalidRequest)
		}

	case isOwningSuperuser:
		var fromOK bool
		switch target {
		case StatusApproved, StatusRejected:
			fromOK = current == StatusPending
		case StatusCancelled:
			fromOK = current == StatusPending || current == StatusApproved
		case StatusCompleted:
			fromOK = current == StatusApproved
		}
		if !fromOK {
			return EffectNone, httperr.ErrBusiness(httperr.CodeInvalidRequest)
		}
		if target == StatusRejected && reason == "" {
			return EffectNone, httperr.ErrBusiness(httperr.CodeInvalidRequest)
		}

	default:
		return EffectNone, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	switch target {
	case StatusApproved:
		return EffectCapture, nil
	case StatusRejected, StatusCancelled:
		return EffectRelease, nil
	}
	return EffectNone, nil
}
