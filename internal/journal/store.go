// Package journal implements the activity record store and history query
// engine: one record per calendar day, replace-on-conflict upserts mirrored
// to durable storage on every write, and ordered, windowed projections over
// the record set.
//
// All day keys, timestamps, and filter windows use UTC so that a record is
// always filed under the same day it is filtered and displayed by.
package journal

import (
	"strings"
	"sync"
	"time"

	apperrors "stridelog/internal/errors"
	"stridelog/internal/models"
	"stridelog/internal/storage"
)

// Candidate is an activity entry as submitted by the caller, before the
// store stamps it with its day key and write moment. Numeric fields are
// assumed non-negative; the binding layer rejects invalid input before it
// reaches the store.
type Candidate struct {
	Steps      int
	WalkingKm  float64
	MoneySpent float64
	Learned    string
	Goals      string
}

// Store owns the in-memory day-keyed record mapping and mirrors every write
// to its durable backend. It is the sole source of truth for journal data;
// projections never mutate it.
type Store struct {
	mu      sync.Mutex
	backend storage.RecordStore
	records map[string]models.ActivityRecord
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for day-key derivation and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open loads the full record mapping from the backend and returns a Store
// over it. A backend with no prior writes yields an empty store; corrupt
// stored data fails with ErrCorruptStore rather than silently discarding
// history.
func Open(backend storage.RecordStore, opts ...Option) (*Store, error) {
	records, err := backend.LoadRecords()
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = map[string]models.ActivityRecord{}
	}

	s := &Store{
		backend: backend,
		records: records,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Upsert stores the candidate under today's day key, replacing any record
// already filed for that day. The stored record carries the moment of this
// write, so a same-day update advances the visible timestamp. The write is
// mirrored to durable storage before the in-memory mapping is touched: a
// failed write leaves the prior state fully intact.
func (s *Store) Upsert(candidate Candidate) (models.ActivityRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	record := models.ActivityRecord{
		Day:        models.DayKey(now),
		RecordedAt: now,
		Steps:      candidate.Steps,
		WalkingKm:  candidate.WalkingKm,
		MoneySpent: candidate.MoneySpent,
		Learned:    strings.TrimSpace(candidate.Learned),
		Goals:      strings.TrimSpace(candidate.Goals),
	}

	next := make(map[string]models.ActivityRecord, len(s.records)+1)
	for day, r := range s.records {
		next[day] = r
	}
	next[record.Day] = record

	if err := s.backend.SaveRecords(next); err != nil {
		return models.ActivityRecord{}, err
	}

	s.records = next
	return record, nil
}

// Get returns the record for the given day key, or ErrRecordNotFound.
func (s *Store) Get(day string) (models.ActivityRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[day]
	if !ok {
		return models.ActivityRecord{}, apperrors.ErrRecordNotFound
	}
	return record, nil
}

// Today returns the record for the current day, or ErrRecordNotFound.
func (s *Store) Today() (models.ActivityRecord, error) {
	return s.Get(models.DayKey(s.now()))
}

// All returns a snapshot of the full record mapping. Mutating the returned
// map does not affect the store.
func (s *Store) All() map[string]models.ActivityRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]models.ActivityRecord, len(s.records))
	for day, r := range s.records {
		snapshot[day] = r
	}
	return snapshot
}

// History projects the current record set through the given range filter.
func (s *Store) History(rng Range) []models.ActivityRecord {
	return Project(s.All(), rng, s.now())
}
