package availability

import (
	"context"
	"time"

	"github.com/AstralPath/consult-scheduler/internal/audit"
	domain "github.com/AstralPath/consult-scheduler/internal/domain/availability"
	"github.com/AstralPath/consult-scheduler/internal/httperr"
	"github.com/AstralPath/consult-scheduler/internal/models"
	"github.com/AstralPath/consult-scheduler/internal/timezone"
)

const maxBulkRangeDays = 90

type GenerateBulkInput struct {
	SuperuserID uint

	Days      []int  // 0 = Sunday .. 6 = Saturday
	StartTime string // "15:04"
	EndTime   string // "15:04", same day, after StartTime
	FromDate  string // "2006-01-02", inclusive
	ToDate    string // "2006-01-02", inclusive
	Timezone  string // IANA zone the civil times are declared in
}

type GenerateBulkResult struct {
	Windows []models.AvailabilityWindow `json:"windows"`
	Skipped int                         `json:"skipped"`
}

type GenerateBulk struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewGenerateBulk(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *GenerateBulk {
	return &GenerateBulk{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *GenerateBulk) Execute(
	ctx context.Context,
	in GenerateBulkInput,
) (*GenerateBulkResult, error) {

	// --------------------------------------------------
	// Input validation (malformed input, not empty result)
	// --------------------------------------------------
	if len(in.Days) == 0 || in.StartTime == "" || in.EndTime == "" ||
		in.FromDate == "" || in.ToDate == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	wanted := make(map[time.Weekday]bool, len(in.Days))
	for _, d := range in.Days {
		if d < 0 || d > 6 {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
		}
		wanted[time.Weekday(d)] = true
	}

	startHM, err := time.Parse("15:04", in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}
	endHM, err := time.Parse("15:04", in.EndTime)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	// compare as minutes of day: the range must sit inside one calendar day
	startMinutes := startHM.Hour()*60 + startHM.Minute()
	endMinutes := endHM.Hour()*60 + endHM.Minute()
	if endMinutes <= startMinutes {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	loc, err := timezone.Location(in.Timezone)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTimezone)
	}

	fromDay, err := time.ParseInLocation("2006-01-02", in.FromDate, loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}
	toDay, err := time.ParseInLocation("2006-01-02", in.ToDate, loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	if toDay.Before(fromDay) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}
	// calendar-day arithmetic, so a DST hour in the range cannot skew the cap
	if fromDay.AddDate(0, 0, maxBulkRangeDays).Before(toDay) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	// --------------------------------------------------
	// Candidate generation: one window per matching day,
	// normalized per-date so DST transitions keep each
	// day's actual offset
	// --------------------------------------------------
	now := uc.now()

	var candidates []models.AvailabilityWindow
	for day := fromDay; !day.After(toDay); day = day.AddDate(0, 0, 1) {
		if !wanted[day.Weekday()] {
			continue
		}

		startUTC, err := timezone.NormalizeDay(day, in.StartTime, loc)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
		}
		endUTC, err := timezone.NormalizeDay(day, in.EndTime, loc)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
		}

		if !startUTC.After(now) {
			continue
		}

		candidates = append(candidates, models.AvailabilityWindow{
			SuperuserID: in.SuperuserID,
			StartTime:   startUTC,
			EndTime:     endUTC,
			IsAvailable: true,
		})
	}

	if len(candidates) == 0 {
		// legitimate empty outcome, distinct from malformed input
		return nil, httperr.ErrBusiness(httperr.CodeNoValidWindows)
	}

	// --------------------------------------------------
	// Overlap filter against existing available windows
	// --------------------------------------------------
	existing, err := uc.repo.ListAvailableBetween(
		ctx,
		in.SuperuserID,
		candidates[0].StartTime,
		candidates[len(candidates)-1].EndTime,
	)
	if err != nil {
		return nil, err
	}

	var survivors []models.AvailabilityWindow
	for _, cand := range candidates {
		overlaps := false
		for _, ex := range existing {
			if domain.Overlaps(cand.StartTime, cand.EndTime, ex.StartTime, ex.EndTime) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			survivors = append(survivors, cand)
		}
	}

	skipped := len(candidates) - len(survivors)

	if len(survivors) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeNoValidWindows)
	}

	if err := uc.repo.CreateWindows(ctx, survivors); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &in.SuperuserID,
		Action: "availability_bulk_generated",
		Entity: "availability_window",
		Metadata: map[string]any{
			"created": len(survivors),
			"skipped": skipped,
		},
	})

	return &GenerateBulkResult{
		Windows: survivors,
		Skipped: skipped,
	}, nil
}
