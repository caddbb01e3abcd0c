package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AstralPath/consult-scheduler/internal/httperr"
	"github.com/AstralPath/consult-scheduler/internal/models"
)

func mondaysInput() GenerateBulkInput {
	return GenerateBulkInput{
		SuperuserID: 1,
		Days:        []int{1},
		StartTime:   "10:00",
		EndTime:     "11:00",
		FromDate:    "2026-03-20",
		ToDate:      "2026-03-31",
		Timezone:    "Europe/Ljubljana",
	}
}

func bulkUC(repo *fakeWindowRepo) *GenerateBulk {
	uc := NewGenerateBulk(repo, nil)
	uc.now = func() time.Time {
		return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return uc
}

func TestGenerateBulkAcrossDSTChange(t *testing.T) {
	repo := &fakeWindowRepo{}
	uc := bulkUC(repo)

	res, err := uc.Execute(context.Background(), mondaysInput())
	require.NoError(t, err)

	// Central Europe moves to summer time on 2026-03-29, so the two Mondays
	// in range map the same wall clock to different UTC offsets.
	require.Len(t, res.Windows, 2)
	assert.Equal(t, 0, res.Skipped)

	assert.Equal(t, time.Date(2026, 3, 23, 9, 0, 0, 0, time.UTC), res.Windows[0].StartTime)
	assert.Equal(t, time.Date(2026, 3, 23, 10, 0, 0, 0, time.UTC), res.Windows[0].EndTime)
	assert.Equal(t, time.Date(2026, 3, 30, 8, 0, 0, 0, time.UTC), res.Windows[1].StartTime)
	assert.Equal(t, time.Date(2026, 3, 30, 9, 0, 0, 0, time.UTC), res.Windows[1].EndTime)

	for _, w := range res.Windows {
		assert.Equal(t, uint(1), w.SuperuserID)
		assert.True(t, w.IsAvailable)
	}
	assert.Len(t, repo.created, 2)
}

func TestGenerateBulkSkipsOverlappingDays(t *testing.T) {
	repo := &fakeWindowRepo{
		existing: []models.AvailabilityWindow{{
			SuperuserID: 1,
			StartTime:   time.Date(2026, 3, 23, 9, 30, 0, 0, time.UTC),
			EndTime:     time.Date(2026, 3, 23, 10, 30, 0, 0, time.UTC),
			IsAvailable: true,
		}},
	}
	uc := bulkUC(repo)

	res, err := uc.Execute(context.Background(), mondaysInput())
	require.NoError(t, err)

	require.Len(t, res.Windows, 1)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, time.Date(2026, 3, 30, 8, 0, 0, 0, time.UTC), res.Windows[0].StartTime)
}

func TestGenerateBulkSkipsWindowExtendingIntoRange(t *testing.T) {
	// the existing window starts before the first candidate but reaches into
	// it; it must still be fetched and the colliding candidate skipped
	repo := &fakeWindowRepo{
		existing: []models.AvailabilityWindow{{
			SuperuserID: 1,
			StartTime:   time.Date(2026, 3, 23, 8, 0, 0, 0, time.UTC),
			EndTime:     time.Date(2026, 3, 23, 9, 30, 0, 0, time.UTC),
			IsAvailable: true,
		}},
	}
	uc := bulkUC(repo)

	res, err := uc.Execute(context.Background(), mondaysInput())
	require.NoError(t, err)

	require.Len(t, res.Windows, 1)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, time.Date(2026, 3, 30, 8, 0, 0, 0, time.UTC), res.Windows[0].StartTime)
}

func TestGenerateBulkNoValidWindows(t *testing.T) {
	t.Run("range entirely in the past", func(t *testing.T) {
		uc := bulkUC(&fakeWindowRepo{})
		uc.now = func() time.Time {
			return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		}

		_, err := uc.Execute(context.Background(), mondaysInput())
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNoValidWindows))
	})

	t.Run("no matching weekday in range", func(t *testing.T) {
		in := mondaysInput()
		in.Days = []int{0}
		in.FromDate = "2026-03-23"
		in.ToDate = "2026-03-28"

		_, err := bulkUC(&fakeWindowRepo{}).Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNoValidWindows))
	})

	t.Run("every candidate already covered", func(t *testing.T) {
		repo := &fakeWindowRepo{
			existing: []models.AvailabilityWindow{{
				SuperuserID: 1,
				StartTime:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				EndTime:     time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
				IsAvailable: true,
			}},
		}

		_, err := bulkUC(repo).Execute(context.Background(), mondaysInput())
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNoValidWindows))
		assert.Empty(t, repo.created)
	})
}

func TestGenerateBulkValidation(t *testing.T) {
	mutations := []struct {
		name    string
		mutate  func(*GenerateBulkInput)
		errCode string
	}{
		{"empty days", func(in *GenerateBulkInput) { in.Days = nil }, httperr.CodeInvalidRequest},
		{"weekday out of range", func(in *GenerateBulkInput) { in.Days = []int{7} }, httperr.CodeInvalidRequest},
		{"negative weekday", func(in *GenerateBulkInput) { in.Days = []int{-1} }, httperr.CodeInvalidRequest},
		{"malformed start time", func(in *GenerateBulkInput) { in.StartTime = "25:00" }, httperr.CodeInvalidRequest},
		{"end equals start", func(in *GenerateBulkInput) { in.EndTime = in.StartTime }, httperr.CodeInvalidRequest},
		{"end before start", func(in *GenerateBulkInput) { in.EndTime = "09:00" }, httperr.CodeInvalidRequest},
		{"malformed from date", func(in *GenerateBulkInput) { in.FromDate = "20-03-2026" }, httperr.CodeInvalidRequest},
		{"to before from", func(in *GenerateBulkInput) { in.ToDate = "2026-03-19" }, httperr.CodeInvalidRequest},
		{"range beyond 90 days", func(in *GenerateBulkInput) {
			in.FromDate = "2026-01-01"
			in.ToDate = "2026-04-02"
		}, httperr.CodeInvalidRequest},
		{"unknown timezone", func(in *GenerateBulkInput) { in.Timezone = "Not/AZone" }, httperr.CodeInvalidTimezone},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			in := mondaysInput()
			tt.mutate(&in)

			_, err := bulkUC(&fakeWindowRepo{}).Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tt.errCode), "got %v", err)
		})
	}
}

func TestGenerateBulkAcceptsExactCap(t *testing.T) {
	in := mondaysInput()
	in.FromDate = "2026-01-05"
	in.ToDate = "2026-04-05" // exactly 90 days later

	res, err := bulkUC(&fakeWindowRepo{}).Execute(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Windows)
}
