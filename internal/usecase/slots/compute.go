package slots

import (
	"context"
	"time"

	"github.com/AstralPath/consult-scheduler/internal/cache"
	availabilitydomain "github.com/AstralPath/consult-scheduler/internal/domain/availability"
	bookingdomain "github.com/AstralPath/consult-scheduler/internal/domain/booking"
	"github.com/AstralPath/consult-scheduler/internal/httperr"
)

// slotStride is fixed at 30 minutes regardless of the requested duration, so
// 30-, 60- and 90-minute offerings share one grid and sort together.
const slotStride = 30 * time.Minute

var allowedDurations = map[int]bool{30: true, 60: true, 90: true}

// Slot is a read-time projection, never persisted.
type Slot struct {
	WindowID        string    `json:"slot_id"`
	SuperuserID     uint      `json:"superuser_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
}

type ComputeSlots struct {
	windows  availabilitydomain.Repository
	bookings bookingdomain.Repository
	cache    *cache.SlotCache
	now      func() time.Time
}

func NewComputeSlots(
	windows availabilitydomain.Repository,
	bookings bookingdomain.Repository,
	slotCache *cache.SlotCache,
) *ComputeSlots {
	return &ComputeSlots{
		windows:  windows,
		bookings: bookings,
		cache:    slotCache,
		now:      time.Now,
	}
}

func (uc *ComputeSlots) Execute(
	ctx context.Context,
	duration int,
) ([]Slot, error) {

	if !allowedDurations[duration] {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	var cached []Slot
	if uc.cache.Get(ctx, duration, &cached) {
		return cached, nil
	}

	windows, err := uc.windows.ListFutureAvailable(ctx, nil, uc.now().UTC())
	if err != nil {
		return nil, err
	}

	if len(windows) == 0 {
		return []Slot{}, nil
	}

	// one booking fetch for the whole span covered by the windows
	spanStart := windows[0].StartTime
	spanEnd := windows[0].EndTime
	for _, w := range windows[1:] {
		if w.EndTime.After(spanEnd) {
			spanEnd = w.EndTime
		}
	}

	bookings, err := uc.bookings.ListActiveBetween(ctx, spanStart, spanEnd)
	if err != nil {
		return nil, err
	}

	durationLen := time.Duration(duration) * time.Minute
	result := []Slot{}

	for _, w := range windows {
		for start := w.StartTime; !start.Add(durationLen).After(w.EndTime); start = start.Add(slotStride) {
			end := start.Add(durationLen)

			conflict := false
			for _, b := range bookings {
				if b.SuperuserID != w.SuperuserID {
					continue
				}
				if availabilitydomain.Overlaps(start, end, b.ScheduledStart, b.ScheduledEnd) {
					conflict = true
					break
				}
			}

			if !conflict {
				result = append(result, Slot{
					WindowID:        w.ID,
					SuperuserID:     w.SuperuserID,
					StartTime:       start,
					EndTime:         end,
					DurationMinutes: duration,
				})
			}
		}
	}

	uc.cache.Set(ctx, duration, result)

	return result, nil
}
