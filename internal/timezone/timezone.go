package timezone

import (
	"errors"
	"strings"
	"time"
)

const DefaultTimezone = "UTC"

var ErrInvalidISO = errors.New("invalid ISO-8601 datetime")

// offset-less layouts, tried in order
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

const isoLayout = "2006-01-02T15:04:05.999999"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

// ParseISO parses an ISO-8601 timestamp. Values without an offset are read
// in loc. The result is always in UTC.
func ParseISO(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidISO
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, ErrInvalidISO
}

// FormatISO renders t in loc without an offset, e.g. 2024-03-20T19:30:00.
func FormatISO(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(isoLayout)
}
