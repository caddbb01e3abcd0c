package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/AstralPath/consult-scheduler/internal/domain/booking"
	"github.com/AstralPath/consult-scheduler/internal/httperr"
	"github.com/AstralPath/consult-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Create (conflict-checked)
// --------------------------------------------------

func (r *BookingGormRepository) CreateWithConflictCheck(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"superuser_id = ? AND status IN ? AND scheduled_start < ? AND scheduled_end > ?",
				b.SuperuserID,
				domain.ActiveStatuses(),
				b.ScheduledEnd,
				b.ScheduledStart,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeConflict)
		}

		return tx.Create(b).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness(httperr.CodeConflict)
	}

	return err
}

// --------------------------------------------------
// Read / update
// --------------------------------------------------

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Lists
// --------------------------------------------------

func (r *BookingGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
	f domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}

	var bs []models.Booking
	if err := q.Order("scheduled_start ASC").Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *BookingGormRepository) ListForSuperuser(
	ctx context.Context,
	superuserID uint,
	f domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Where("superuser_id = ?", superuserID)
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}

	var bs []models.Booking
	if err := q.Order("scheduled_start ASC").Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *BookingGormRepository) ListActiveBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Select("superuser_id", "scheduled_start", "scheduled_end").
		Where(
			"status IN ? AND scheduled_start < ? AND scheduled_end > ?",
			domain.ActiveStatuses(),
			end,
			start,
		).
		Order("scheduled_start ASC").
		Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
