package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	apperrors "stridelog/internal/errors"
	"stridelog/internal/models"
)

const (
	recordsFile    = "records.json"
	credentialFile = "credential.json"
)

// JSONStore keeps the record mapping and the credential in two JSON files
// under a data directory. Writes go through a temp file and rename so a
// crash mid-write never leaves a torn mapping behind.
type JSONStore struct {
	dir string
}

var _ Store = (*JSONStore)(nil)

// NewJSONStore creates a JSONStore rooted at dir, creating it if needed.
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &JSONStore{dir: dir}, nil
}

// LoadRecords reads the full day-keyed record mapping from records.json.
func (s *JSONStore) LoadRecords() (map[string]models.ActivityRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, recordsFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// First run, nothing recorded yet.
			return map[string]models.ActivityRecord{}, nil
		}
		// The file could not be read at all; its contents may be fine, so
		// this is an I/O failure rather than corruption.
		return nil, apperrors.Wrap(apperrors.ErrStorageRead, err)
	}

	records := map[string]models.ActivityRecord{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCorruptStore, err)
	}
	return records, nil
}

// SaveRecords replaces records.json with the given mapping.
func (s *JSONStore) SaveRecords(records map[string]models.ActivityRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorageWrite, err)
	}
	return s.writeAtomic(recordsFile, data)
}

type credentialSlot struct {
	Hash string `json:"hash"`
}

// LoadCredential reads the stored credential hash from credential.json.
func (s *JSONStore) LoadCredential() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, credentialFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", apperrors.ErrCredentialNotSet
		}
		return "", apperrors.Wrap(apperrors.ErrStorageRead, err)
	}

	var slot credentialSlot
	if err := json.Unmarshal(data, &slot); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCorruptStore, err)
	}
	if slot.Hash == "" {
		return "", apperrors.ErrCredentialNotSet
	}
	return slot.Hash, nil
}

// SaveCredential replaces credential.json with the given hash.
func (s *JSONStore) SaveCredential(hash string) error {
	data, err := json.MarshalIndent(credentialSlot{Hash: hash}, "", "  ")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorageWrite, err)
	}
	return s.writeAtomic(credentialFile, data)
}

// writeAtomic writes data to a temp file in the data directory and renames
// it over the target, which is atomic on POSIX filesystems.
func (s *JSONStore) writeAtomic(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorageWrite, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.Wrap(apperrors.ErrStorageWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.Wrap(apperrors.ErrStorageWrite, err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return apperrors.Wrap(apperrors.ErrStorageWrite, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpName)
		return apperrors.Wrap(apperrors.ErrStorageWrite, err)
	}
	return nil
}
