package calendar

import (
	"sort"
	"time"

	"fvs_dash/internal/common"
)

// FilterAll is the explicit "no filtering on this dimension" sentinel,
// equivalent to omitting the criterion entirely.
const FilterAll = "all"

// FilterCriteria narrows scheduled items by content type and status. Empty
// or FilterAll values match everything on that dimension.
type FilterCriteria struct {
	ContentType string
	Status      string
}

// matches reports whether an item passes every provided criterion.
func (c FilterCriteria) matches(item ScheduledItem) bool {
	if c.ContentType != "" && c.ContentType != FilterAll && item.ContentType != c.ContentType {
		return false
	}
	if c.Status != "" && c.Status != FilterAll && item.Status != c.Status {
		return false
	}
	return true
}

// ApplyFilters returns the subsequence of items where every provided
// criterion matches, preserving the original relative order.
func ApplyFilters(items []ScheduledItem, criteria FilterCriteria) []ScheduledItem {
	out := make([]ScheduledItem, 0, len(items))
	for _, item := range items {
		if criteria.matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// MonthGrid buckets the scheduled items falling within the given month by
// day key. Every day of the month is present, empty days with an empty
// slice, so the grid renders uniform cells from the 1st to the last day.
// Items outside the month are excluded even when the caller renders
// adjacent leading or trailing cells for layout.
func MonthGrid(items []ScheduledItem, year int, month time.Month) (map[string][]ScheduledItem, error) {
	if month < time.January || month > time.December || year < 1 {
		return nil, common.ErrInvalidDateInput
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	// Day 0 of the next month is the last day of this one.
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	grid := make(map[string][]ScheduledItem, lastDay)
	for day := 0; day < lastDay; day++ {
		grid[ToDayKey(first.AddDate(0, 0, day))] = []ScheduledItem{}
	}

	for _, item := range items {
		if cell, ok := grid[item.DayKey]; ok {
			grid[item.DayKey] = append(cell, item)
		}
	}

	return grid, nil
}

// Agenda returns all items sorted ascending by day key, ties broken by the
// original order (stable sort).
func Agenda(items []ScheduledItem) []ScheduledItem {
	out := make([]ScheduledItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DayKey < out[j].DayKey
	})
	return out
}

// Upcoming returns the items with a day key at or after fromDayKey,
// ascending, truncated to limit. A non-positive limit returns the full
// tail.
func Upcoming(items []ScheduledItem, fromDayKey string, limit int) ([]ScheduledItem, error) {
	if !IsDayKey(fromDayKey) {
		return nil, common.ErrInvalidDateInput
	}

	matched := make([]ScheduledItem, 0, len(items))
	for _, item := range items {
		if item.DayKey >= fromDayKey {
			matched = append(matched, item)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].DayKey < matched[j].DayKey
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}
