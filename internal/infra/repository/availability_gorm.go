package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/AstralPath/consult-scheduler/internal/domain/availability"
	"github.com/AstralPath/consult-scheduler/internal/httperr"
	"github.com/AstralPath/consult-scheduler/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

// --------------------------------------------------
// Windows (create / overlap)
// --------------------------------------------------

func (r *AvailabilityGormRepository) CreateWindowIfNoOverlap(
	ctx context.Context,
	w *models.AvailabilityWindow,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.AvailabilityWindow{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"superuser_id = ? AND is_available = true AND start_time < ? AND end_time > ?",
				w.SuperuserID,
				w.EndTime,
				w.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeOverlap)
		}

		return tx.Create(w).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness(httperr.CodeOverlap)
	}

	return err
}

func (r *AvailabilityGormRepository) CreateWindows(
	ctx context.Context,
	ws []models.AvailabilityWindow,
) error {

	if len(ws) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Create(&ws).Error
	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness(httperr.CodeOverlap)
	}
	return err
}

// --------------------------------------------------
// Windows (read)
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetWindow(
	ctx context.Context,
	id string,
) (*models.AvailabilityWindow, error) {

	var w models.AvailabilityWindow
	if err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *AvailabilityGormRepository) ListFutureAvailable(
	ctx context.Context,
	superuserID *uint,
	after time.Time,
) ([]models.AvailabilityWindow, error) {

	q := r.db.WithContext(ctx).
		Where("is_available = true AND start_time >= ?", after)

	if superuserID != nil {
		q = q.Where("superuser_id = ?", *superuserID)
	}

	var ws []models.AvailabilityWindow
	if err := q.Order("start_time ASC").Find(&ws).Error; err != nil {
		return nil, err
	}
	return ws, nil
}

func (r *AvailabilityGormRepository) ListAvailableBetween(
	ctx context.Context,
	superuserID uint,
	from time.Time,
	to time.Time,
) ([]models.AvailabilityWindow, error) {

	// interval intersection, not containment: a window that starts before the
	// span but extends into it still collides with candidates inside it
	var ws []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where(
			"superuser_id = ? AND is_available = true AND start_time < ? AND end_time > ?",
			superuserID, to, from,
		).
		Order("start_time ASC").
		Find(&ws).Error; err != nil {
		return nil, err
	}
	return ws, nil
}

// --------------------------------------------------
// Windows (withdraw)
// --------------------------------------------------

func (r *AvailabilityGormRepository) Withdraw(
	ctx context.Context,
	w *models.AvailabilityWindow,
) error {

	w.IsAvailable = false
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *AvailabilityGormRepository) CountActiveBookingsForWindow(
	ctx context.Context,
	windowID string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"window_id = ? AND status IN ?",
			windowID,
			[]string{"pending", "approved"},
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*AvailabilityGormRepository)(nil)
