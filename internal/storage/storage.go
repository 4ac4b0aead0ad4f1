// Package storage provides the durable backends for journal data. The
// contract is deliberately coarse: the full day-keyed record mapping is
// loaded once and replaced atomically on every write, so no backend can
// ever expose a partially-written record set.
package storage

import "stridelog/internal/models"

// RecordStore persists the day-keyed activity record mapping.
type RecordStore interface {
	// LoadRecords reads the full record mapping. A backend with no prior
	// writes returns an empty mapping, not an error. Structurally invalid
	// stored data fails with ErrCorruptStore.
	LoadRecords() (map[string]models.ActivityRecord, error)

	// SaveRecords replaces the stored mapping in a single atomic write.
	SaveRecords(records map[string]models.ActivityRecord) error
}

// CredentialStore persists the owner's single login credential hash,
// opaque to everything but the auth service.
type CredentialStore interface {
	// LoadCredential returns the stored hash, or ErrCredentialNotSet when
	// no credential has been saved yet.
	LoadCredential() (string, error)

	SaveCredential(hash string) error
}

// Store is a full journal storage backend.
type Store interface {
	RecordStore
	CredentialStore
}
