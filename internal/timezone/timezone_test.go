package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("Europe/Ljubljana"))
	assert.True(t, IsValid("America/Sao_Paulo"))
	assert.True(t, IsValid("UTC"))

	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus_Mons"))
	assert.False(t, IsValid("CET+1"))
}

func TestLocationInvalid(t *testing.T) {
	_, err := Location("Not/AZone")
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestNormalizeResolvesOffsetPerDate(t *testing.T) {
	// Central Europe switches to summer time on 2026-03-29. The same wall
	// clock maps to different UTC instants on either side of the change.
	before, err := Normalize("2026-03-28", "10:00", "Europe/Ljubljana")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 28, 9, 0, 0, 0, time.UTC), before)

	after, err := Normalize("2026-03-30", "10:00", "Europe/Ljubljana")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 30, 8, 0, 0, 0, time.UTC), after)
}

func TestNormalizeRejectsBadInput(t *testing.T) {
	_, err := Normalize("2026-03-28", "10:00", "Not/AZone")
	assert.ErrorIs(t, err, ErrInvalidTimezone)

	_, err = Normalize("2026-13-40", "10:00", "UTC")
	assert.Error(t, err)

	_, err = Normalize("2026-03-28", "25:99", "UTC")
	assert.Error(t, err)
}

func TestSetDefaultUsedForEmptyZone(t *testing.T) {
	require.NoError(t, SetDefault("Europe/Ljubljana"))
	t.Cleanup(func() { defaultLocation = time.Local })

	loc, err := Location("")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Ljubljana", loc.String())

	got, err := Normalize("2026-06-01", "10:00", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC), got)

	// an unknown default is rejected and the previous one kept
	assert.ErrorIs(t, SetDefault("Not/AZone"), ErrInvalidTimezone)
	loc, err = Location("")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Ljubljana", loc.String())

	// empty name keeps the current default
	require.NoError(t, SetDefault(""))
}

func TestNormalizeDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Ljubljana")
	require.NoError(t, err)

	day := time.Date(2026, 3, 30, 0, 0, 0, 0, loc)

	got, err := NormalizeDay(day, "09:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 30, 7, 30, 0, 0, time.UTC), got)

	_, err = NormalizeDay(day, "9h30", loc)
	assert.Error(t, err)
}
