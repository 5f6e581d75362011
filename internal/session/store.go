package session

import (
	"log/slog"
	"sync"

	"ev-campus-client/internal/pkg/errs"
	"ev-campus-client/internal/pkg/token"
)

var ErrInvalidCredential = errs.New("invalid credential")

// Session is the display-ready identity derived from the credential.
type Session struct {
	DisplayName string
	Email       string
}

// Store holds the single logical session for this client instance.
// Lifecycle: Bootstrap once at startup, Establish after login/register,
// Clear on logout. At most one session is visible at any time.
type Store struct {
	mu         sync.Mutex
	storage    Storage
	credential string
	session    *Session
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Bootstrap restores the session from the persisted credential. A missing
// credential leaves no session; an undecodable one is discarded from storage
// so the next start is clean. Bootstrap never fails the caller over a bad
// credential, only over storage access itself.
func (s *Store) Bootstrap() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	credential, ok, err := s.storage.Load()
	if err != nil {
		return errs.Wrap(err, "loading persisted credential")
	}
	if !ok {
		return nil
	}

	claims, err := token.Decode(credential)
	if err != nil {
		slog.Warn("discarding undecodable persisted credential", "error", err.Error())
		if delErr := s.storage.Delete(); delErr != nil {
			return errs.Wrap(delErr, "discarding persisted credential")
		}
		return nil
	}

	s.credential = credential
	s.session = &Session{
		DisplayName: token.LocalPart(claims.Subject),
		Email:       claims.Subject,
	}
	return nil
}

// Establish replaces the session after a successful login or register.
// preferredName lets the register flow show the name the user typed; when
// empty the local part of the subject is used.
func (s *Store) Establish(credential, preferredName string) (Session, error) {
	claims, err := token.Decode(credential)
	if err != nil {
		return Session{}, errs.Mark(err, ErrInvalidCredential)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Save(credential); err != nil {
		return Session{}, errs.Wrap(err, "persisting credential")
	}

	name := preferredName
	if name == "" {
		name = token.LocalPart(claims.Subject)
	}
	s.credential = credential
	s.session = &Session{DisplayName: name, Email: claims.Subject}
	return *s.session, nil
}

// Clear drops the session and the persisted credential. Safe to call when
// no session exists.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(); err != nil {
		return errs.Wrap(err, "deleting persisted credential")
	}
	s.credential = ""
	s.session = nil
	return nil
}

// Current returns the active session, if any.
func (s *Store) Current() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

// Credential returns the raw bearer credential for the request pipeline.
func (s *Store) Credential() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential, s.credential != ""
}
