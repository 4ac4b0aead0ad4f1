package models

import "time"

// DayKeyLayout is the calendar-day key format used to identify one activity
// record. Keys are derived in UTC so that key derivation and history filter
// boundaries always agree.
const DayKeyLayout = "2006-01-02"

// ActivityRecord is one journal entry for one calendar day. The JSON field
// names double as the durable slot format, so a persisted mapping keyed by
// day round-trips field for field.
type ActivityRecord struct {
	Day        string    `gorm:"primaryKey;size:10" json:"date"`
	RecordedAt time.Time `gorm:"not null" json:"timestamp"`
	Steps      int       `gorm:"not null" json:"steps"`
	WalkingKm  float64   `gorm:"not null" json:"walking"`
	MoneySpent float64   `gorm:"not null" json:"moneySpent"`
	Learned    string    `json:"learned"`
	Goals      string    `json:"goals"`
}

// TableName overrides the GORM table name.
func (ActivityRecord) TableName() string { return "activity_records" }

// DayKey formats an instant as a calendar-day key in UTC.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayKeyLayout)
}
