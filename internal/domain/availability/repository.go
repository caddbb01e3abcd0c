package availability

import (
	"context"
	"time"

	"github.com/AstralPath/consult-scheduler/internal/models"
)

type Repository interface {
	// CreateWindowIfNoOverlap inserts the window after checking, inside a
	// serializing transaction, that it does not intersect any available
	// window of the same superuser. Returns an overlap business error
	// otherwise, including when the exclusion constraint fires.
	CreateWindowIfNoOverlap(
		ctx context.Context,
		w *models.AvailabilityWindow,
	) error

	// CreateWindows bulk-inserts pre-filtered windows.
	CreateWindows(
		ctx context.Context,
		ws []models.AvailabilityWindow,
	) error

	GetWindow(
		ctx context.Context,
		id string,
	) (*models.AvailabilityWindow, error)

	// ListFutureAvailable returns available windows starting at or after
	// `after`, ordered by start time, optionally scoped to one superuser.
	ListFutureAvailable(
		ctx context.Context,
		superuserID *uint,
		after time.Time,
	) ([]models.AvailabilityWindow, error)

	// ListAvailableBetween returns a superuser's available windows whose
	// interval intersects [from, to). Used by the bulk generator's overlap
	// filter, so it must include windows that merely extend into the span.
	ListAvailableBetween(
		ctx context.Context,
		superuserID uint,
		from time.Time,
		to time.Time,
	) ([]models.AvailabilityWindow, error)

	Withdraw(
		ctx context.Context,
		w *models.AvailabilityWindow,
	) error

	// CountActiveBookingsForWindow counts pending/approved bookings that
	// reference the window. Windows with active bookings cannot be withdrawn.
	CountActiveBookingsForWindow(
		ctx context.Context,
		windowID string,
	) (int64, error)
}
