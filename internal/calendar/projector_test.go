package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fvs_dash/internal/common"
)

func scheduledFixture() []ScheduledItem {
	return []ScheduledItem{
		{ID: "s1", Title: "Episode 12", ContentType: ContentTypePodcast, DayKey: "2024-08-19", Status: StatusScheduled, Priority: PriorityMedium},
		{ID: "s2", Title: "Teaser", ContentType: ContentTypeShorts, DayKey: "2024-08-05", Status: StatusInProduction, Priority: PriorityHigh},
		{ID: "s3", Title: "Launch recap", ContentType: ContentTypeBlog, DayKey: "2024-08-19", Status: StatusReview, Priority: PriorityLow},
		{ID: "s4", Title: "Episode 13", ContentType: ContentTypePodcast, DayKey: "2024-09-02", Status: StatusScheduled, Priority: PriorityMedium},
	}
}

func TestApplyFilters(t *testing.T) {
	items := scheduledFixture()

	t.Run("all sentinel matches everything", func(t *testing.T) {
		got := ApplyFilters(items, FilterCriteria{ContentType: FilterAll, Status: FilterAll})
		assert.Equal(t, items, got)
	})

	t.Run("empty criteria match everything", func(t *testing.T) {
		got := ApplyFilters(items, FilterCriteria{})
		assert.Equal(t, items, got)
	})

	t.Run("single dimension", func(t *testing.T) {
		got := ApplyFilters(items, FilterCriteria{ContentType: ContentTypePodcast})
		require.Len(t, got, 2)
		assert.Equal(t, "s1", got[0].ID)
		assert.Equal(t, "s4", got[1].ID)
	})

	t.Run("criteria combine conjunctively", func(t *testing.T) {
		got := ApplyFilters(items, FilterCriteria{ContentType: ContentTypePodcast, Status: StatusScheduled})
		require.Len(t, got, 2)

		got = ApplyFilters(items, FilterCriteria{ContentType: ContentTypePodcast, Status: StatusReview})
		assert.Empty(t, got)
	})

	t.Run("no match yields empty not nil", func(t *testing.T) {
		got := ApplyFilters(items, FilterCriteria{Status: StatusPublished})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestMonthGrid(t *testing.T) {
	t.Run("every day present, items bucketed by day key", func(t *testing.T) {
		grid, err := MonthGrid(scheduledFixture(), 2024, time.August)
		require.NoError(t, err)
		assert.Len(t, grid, 31)

		assert.Len(t, grid["2024-08-19"], 2)
		assert.Len(t, grid["2024-08-05"], 1)

		empty, ok := grid["2024-08-01"]
		require.True(t, ok)
		assert.Empty(t, empty)

		// September items never leak into August cells.
		for _, cell := range grid {
			for _, item := range cell {
				assert.NotEqual(t, "s4", item.ID)
			}
		}
	})

	t.Run("leap and non-leap february", func(t *testing.T) {
		grid, err := MonthGrid(nil, 2024, time.February)
		require.NoError(t, err)
		assert.Len(t, grid, 29)
		_, ok := grid["2024-02-29"]
		assert.True(t, ok)

		grid, err = MonthGrid(nil, 2023, time.February)
		require.NoError(t, err)
		assert.Len(t, grid, 28)
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := MonthGrid(nil, 2024, time.Month(13))
		assert.ErrorIs(t, err, common.ErrInvalidDateInput)
		_, err = MonthGrid(nil, 0, time.August)
		assert.ErrorIs(t, err, common.ErrInvalidDateInput)
	})
}

func TestAgenda(t *testing.T) {
	items := scheduledFixture()
	got := Agenda(items)

	require.Len(t, got, 4)
	assert.Equal(t, "s2", got[0].ID)
	assert.Equal(t, "s4", got[3].ID)

	// Same-day ties keep their original relative order.
	assert.Equal(t, "s1", got[1].ID)
	assert.Equal(t, "s3", got[2].ID)

	// Input order is untouched.
	assert.Equal(t, "s1", items[0].ID)
}

func TestUpcoming(t *testing.T) {
	items := scheduledFixture()

	t.Run("from day key is inclusive", func(t *testing.T) {
		got, err := Upcoming(items, "2024-08-19", 0)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "s1", got[0].ID)
		assert.Equal(t, "s3", got[1].ID)
		assert.Equal(t, "s4", got[2].ID)
	})

	t.Run("limit truncates", func(t *testing.T) {
		got, err := Upcoming(items, "2024-08-01", 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "s2", got[0].ID)
	})

	t.Run("invalid from day key", func(t *testing.T) {
		_, err := Upcoming(items, "today", 5)
		assert.ErrorIs(t, err, common.ErrInvalidDateInput)
	})
}
