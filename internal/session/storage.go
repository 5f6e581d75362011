package session

import (
	"os"
	"path/filepath"

	"ev-campus-client/internal/pkg/errs"
)

// Storage is the single durable slot holding the credential between runs,
// the desktop counterpart of the browser's one localStorage key.
type Storage interface {
	// Load returns the stored credential, or ok=false when none is stored.
	Load() (credential string, ok bool, err error)
	Save(credential string) error
	// Delete removes the credential. Deleting an empty slot is a no-op.
	Delete() error
}

type fileStorage struct {
	path string
}

// NewFileStorage stores the credential at path. An empty path falls back to
// <UserConfigDir>/ev-campus/credential.
func NewFileStorage(path string) (Storage, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, errs.Wrap(err, "resolving user config dir")
		}
		path = filepath.Join(dir, "ev-campus", "credential")
	}
	return &fileStorage{path: path}, nil
}

func (s *fileStorage) Load() (string, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errs.Wrap(err, "reading credential file")
	}
	if len(data) == 0 {
		return "", false, nil
	}
	return string(data), true, nil
}

func (s *fileStorage) Save(credential string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errs.Wrap(err, "creating credential dir")
	}
	if err := os.WriteFile(s.path, []byte(credential), 0o600); err != nil {
		return errs.Wrap(err, "writing credential file")
	}
	return nil
}

func (s *fileStorage) Delete() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err, "removing credential file")
	}
	return nil
}

// MemoryStorage keeps the credential in memory. Used by tests and available
// for ephemeral sessions.
type MemoryStorage struct {
	credential string
	present    bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() (string, bool, error) {
	return s.credential, s.present, nil
}

func (s *MemoryStorage) Save(credential string) error {
	s.credential = credential
	s.present = true
	return nil
}

func (s *MemoryStorage) Delete() error {
	s.credential = ""
	s.present = false
	return nil
}
