package journal

import (
	"sort"
	"time"

	apperrors "stridelog/internal/errors"
	"stridelog/internal/models"
)

// Range selects the history window to project.
type Range string

const (
	RangeAll   Range = "all"
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
)

// ParseRange converts a query-string value into a Range. An empty value
// defaults to RangeAll.
func ParseRange(s string) (Range, error) {
	switch Range(s) {
	case "":
		return RangeAll, nil
	case RangeAll, RangeWeek, RangeMonth:
		return Range(s), nil
	}
	return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "range must be one of all, week, month")
}

// Project derives a display-ready history sequence from a record mapping:
// most recent write first, optionally bounded below by the range window.
// It is a pure function of its inputs and never mutates the mapping. An
// empty result means no activity in the window, which is not an error.
func Project(records map[string]models.ActivityRecord, rng Range, now time.Time) []models.ActivityRecord {
	// Collect values in ascending day-key order so that timestamp ties
	// resolve the same way on every call.
	days := make([]string, 0, len(records))
	for day := range records {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]models.ActivityRecord, 0, len(records))
	for _, day := range days {
		result = append(result, records[day])
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].RecordedAt.After(result[j].RecordedAt)
	})

	if bound, ok := lowerBound(rng, now.UTC()); ok {
		filtered := result[:0]
		for _, r := range result {
			if !r.RecordedAt.Before(bound) {
				filtered = append(filtered, r)
			}
		}
		result = filtered
	}
	return result
}

// lowerBound returns the inclusive timestamp floor for a range, or false
// when the range is unbounded.
func lowerBound(rng Range, now time.Time) (time.Time, bool) {
	switch rng {
	case RangeWeek:
		return now.AddDate(0, 0, -7), true
	case RangeMonth:
		return monthEarlier(now), true
	}
	return time.Time{}, false
}

// monthEarlier returns the same day-of-month one calendar month before now.
// When that day does not exist (e.g. March 31 back to February), the bound
// clamps to the last day of that month instead of spilling forward.
func monthEarlier(now time.Time) time.Time {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevMonth := firstOfMonth.AddDate(0, -1, 0)
	daysInPrev := firstOfMonth.AddDate(0, 0, -1).Day()

	day := now.Day()
	if day > daysInPrev {
		day = daysInPrev
	}
	return time.Date(prevMonth.Year(), prevMonth.Month(), day,
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
}
