package timezone

import (
	"errors"
	"log"
	"time"
)

var ErrInvalidTimezone = errors.New("invalid_timezone")

// defaultLocation is the zone used when a request carries no timezone.
var defaultLocation = time.Local

// SetDefault configures the empty-zone fallback, normally from the
// DEFAULT_TIMEZONE env var at startup. An empty name keeps the current
// default.
func SetDefault(tz string) error {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return ErrInvalidTimezone
	}
	defaultLocation = loc
	return nil
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) (*time.Location, error) {
	if tz == "" {
		// Deprecated fallback: interpreting civil times in the configured
		// default zone is only correct when it matches the superuser's.
		log.Printf("timezone: empty zone, falling back to default %s (deprecated)", defaultLocation)
		return defaultLocation, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}

// Normalize converts a civil date ("2006-01-02") and clock time ("15:04") in
// the given IANA zone into the equivalent UTC instant. The offset is resolved
// per date, so windows generated across a DST transition carry that day's
// actual offset.
func Normalize(date, clock, tz string) (time.Time, error) {
	loc, err := Location(tz)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, err
	}

	return t.UTC(), nil
}

// NormalizeDay places a clock time on the given calendar day in the zone's
// wall clock and returns the UTC instant.
func NormalizeDay(day time.Time, clock string, loc *time.Location) (time.Time, error) {
	hm, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}

	t := time.Date(
		day.Year(), day.Month(), day.Day(),
		hm.Hour(), hm.Minute(), 0, 0,
		loc,
	)
	return t.UTC(), nil
}
