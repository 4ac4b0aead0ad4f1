package storage

import (
	"errors"

	"gorm.io/gorm"

	apperrors "stridelog/internal/errors"
	"stridelog/internal/models"
)

// GormStore persists journal data in a relational database through GORM.
// Records live in activity_records keyed by day; the credential is a single
// row in credentials. SaveRecords runs as a delete-and-insert inside one
// transaction, preserving the atomic full-replace contract.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

// NewGormStore creates a GormStore over an already-migrated database.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// LoadRecords reads all activity records into a day-keyed mapping.
func (s *GormStore) LoadRecords() (map[string]models.ActivityRecord, error) {
	var rows []models.ActivityRecord
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCorruptStore, err)
	}

	records := make(map[string]models.ActivityRecord, len(rows))
	for _, r := range rows {
		records[r.Day] = r
	}
	return records, nil
}

// SaveRecords replaces the full activity_records table with the given mapping.
func (s *GormStore) SaveRecords(records map[string]models.ActivityRecord) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.ActivityRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		rows := make([]models.ActivityRecord, 0, len(records))
		for _, r := range records {
			rows = append(rows, r)
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorageWrite, err)
	}
	return nil
}

// LoadCredential reads the single credential row.
func (s *GormStore) LoadCredential() (string, error) {
	var cred models.Credential
	if err := s.db.First(&cred).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrCredentialNotSet
		}
		return "", apperrors.Wrap(apperrors.ErrCorruptStore, err)
	}
	return cred.PasswordHash, nil
}

// SaveCredential upserts the single credential row.
func (s *GormStore) SaveCredential(hash string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cred models.Credential
		if err := tx.First(&cred).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(&models.Credential{PasswordHash: hash}).Error
			}
			return err
		}
		return tx.Model(&cred).Update("password_hash", hash).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorageWrite, err)
	}
	return nil
}
