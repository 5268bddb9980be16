package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fvs_dash/internal/common"
)

func TestToDayKey(t *testing.T) {
	t.Run("formats local calendar fields zero-padded", func(t *testing.T) {
		d := time.Date(2024, time.August, 5, 23, 59, 0, 0, time.Local)
		assert.Equal(t, "2024-08-05", ToDayKey(d))
	})

	t.Run("ignores time of day", func(t *testing.T) {
		morning := time.Date(2024, time.August, 19, 0, 0, 1, 0, time.Local)
		evening := time.Date(2024, time.August, 19, 23, 59, 59, 0, time.Local)
		assert.Equal(t, ToDayKey(morning), ToDayKey(evening))
	})
}

func TestFromDayKey(t *testing.T) {
	t.Run("round trip is idempotent", func(t *testing.T) {
		keys := []string{"2024-01-01", "2024-02-29", "2024-08-19", "2024-12-31"}
		for _, k := range keys {
			parsed, err := FromDayKey(k)
			assert.NoError(t, err)
			assert.Equal(t, k, ToDayKey(parsed))
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		bad := []string{"", "2024-8-19", "19-08-2024", "2024/08/19", "2024-08-19T00:00:00Z", "not-a-date"}
		for _, k := range bad {
			_, err := FromDayKey(k)
			assert.ErrorIs(t, err, common.ErrInvalidDateInput, "key %q", k)
		}
	})

	t.Run("rejects well-formed but impossible dates", func(t *testing.T) {
		_, err := FromDayKey("2024-02-31")
		assert.ErrorIs(t, err, common.ErrInvalidDateInput)
		_, err = FromDayKey("2023-02-29")
		assert.ErrorIs(t, err, common.ErrInvalidDateInput)
		_, err = FromDayKey("2024-13-01")
		assert.ErrorIs(t, err, common.ErrInvalidDateInput)
	})
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay("2024-08-29", "2024-08-29"))
	assert.False(t, SameDay("2024-08-29", "2024-08-22"))
}
