package testutil

import (
	"fmt"
	"time"

	"stridelog/internal/models"
)

// Record creates an activity record stamped at the given instant, with
// field values derived from the day so records are distinguishable.
func Record(recordedAt time.Time) models.ActivityRecord {
	recordedAt = recordedAt.UTC()
	return models.ActivityRecord{
		Day:        models.DayKey(recordedAt),
		RecordedAt: recordedAt,
		Steps:      1000 * recordedAt.Day(),
		WalkingKm:  0.5 * float64(recordedAt.Day()),
		MoneySpent: 2.5 * float64(recordedAt.Day()),
		Learned:    fmt.Sprintf("learned on %s", models.DayKey(recordedAt)),
		Goals:      fmt.Sprintf("goals for %s", models.DayKey(recordedAt)),
	}
}

// RecordMap builds a day-keyed mapping from records.
func RecordMap(records ...models.ActivityRecord) map[string]models.ActivityRecord {
	m := make(map[string]models.ActivityRecord, len(records))
	for _, r := range records {
		m[r.Day] = r
	}
	return m
}
