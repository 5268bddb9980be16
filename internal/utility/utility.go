package utility

import (
	"time"
)

// UnixMilli returns the given time in milliseconds.
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli returns the current timestamp in milliseconds.
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}
