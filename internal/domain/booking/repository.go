package booking

import (
	"context"
	"time"

	"github.com/AstralPath/consult-scheduler/internal/models"
)

type ListFilter struct {
	Statuses []string
}

type Repository interface {
	// CreateWithConflictCheck inserts the booking after re-checking, inside a
	// serializing transaction, that no pending/approved booking of the same
	// superuser overlaps its interval. Returns a conflict business error when
	// the slot is taken, including when the store-level exclusion constraint
	// fires under concurrency.
	CreateWithConflictCheck(
		ctx context.Context,
		b *models.Booking,
	) error

	GetByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	Update(
		ctx context.Context,
		b *models.Booking,
	) error

	ListForUser(
		ctx context.Context,
		userID uint,
		f ListFilter,
	) ([]models.Booking, error)

	ListForSuperuser(
		ctx context.Context,
		superuserID uint,
		f ListFilter,
	) ([]models.Booking, error)

	// ListActiveBetween returns pending/approved bookings whose interval
	// intersects [start, end), across all superusers. Used by the slot
	// projection.
	ListActiveBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
