package calendar

import (
	"regexp"
	"time"

	"fvs_dash/internal/common"
)

// dayKeyLayout is the canonical day key layout. Day keys identify calendar
// days, not instants; they carry no time-of-day and no timezone.
const dayKeyLayout = "2006-01-02"

var dayKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ToDayKey formats a time's local calendar fields as a canonical day key.
// Canonicalization happens here, at the boundary, so that day comparison is
// plain string equality everywhere else and no timezone double-conversion
// can creep in.
func ToDayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// FromDayKey parses a canonical day key back into a time at local midnight.
// Round trip holds: ToDayKey(mustFromDayKey(k)) == k for every valid k.
func FromDayKey(key string) (time.Time, error) {
	if !dayKeyPattern.MatchString(key) {
		return time.Time{}, common.ErrInvalidDateInput
	}
	t, err := time.ParseInLocation(dayKeyLayout, key, time.Local)
	if err != nil {
		// Pattern matched but the fields are not a real date (2024-02-31).
		return time.Time{}, common.ErrInvalidDateInput
	}
	return t, nil
}

// IsDayKey reports whether key is a syntactically valid canonical day key
// naming a real calendar day.
func IsDayKey(key string) bool {
	_, err := FromDayKey(key)
	return err == nil
}

// SameDay reports whether two canonical day keys name the same day. Both
// sides are canonical, so this is pure string equality.
func SameDay(a, b string) bool {
	return a == b
}
