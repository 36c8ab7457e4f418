package sessions

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jrsteele09/gastometro/internal/errors"
	"github.com/jrsteele09/gastometro/storage"
	"github.com/jrsteele09/gastometro/users"
	"github.com/rs/zerolog/log"
)

var _ Service = (*Store)(nil)

// Store is the storage backed Service.
type Store struct {
	storage storage.Store

	mu          sync.RWMutex
	session     Session
	subscribers map[int]func(Session)
	nextSubID   int
}

// NewStore seeds the session from st: authenticated when an access token is stored,
// with the cached profile when one decodes cleanly.
func NewStore(st storage.Store) *Store {
	s := &Store{
		storage:     st,
		subscribers: make(map[int]func(Session)),
	}
	s.session = s.load()
	return s
}

func (s *Store) load() Session {
	token, err := s.storage.Get(storage.KeyAccessToken)
	if err != nil && !errors.Is(err, errors.ErrNotFound) {
		log.Warn().Err(err).Msg("failed to read stored access token")
	}

	session := Session{IsAuthenticated: err == nil && token != ""}

	raw, err := s.storage.Get(storage.KeyAuthUser)
	switch {
	case errors.Is(err, errors.ErrNotFound):
	case err != nil:
		log.Warn().Err(err).Msg("failed to read stored user profile")
	default:
		profile, err := users.ParseProfile([]byte(raw))
		if err != nil {
			log.Warn().Err(err).Msg("ignoring unreadable stored user profile")
			break
		}
		session.User = profile
	}
	return session
}

func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Login writes each key independently; a failed write does not stop the others and
// the in-memory session is updated regardless. The joined write errors are returned.
func (s *Store) Login(creds Credentials) error {
	var errs []error

	if creds.AccessToken != "" {
		errs = append(errs, s.storage.Set(storage.KeyAccessToken, creds.AccessToken))
	}
	if creds.RefreshToken != "" {
		errs = append(errs, s.storage.Set(storage.KeyRefreshToken, creds.RefreshToken))
	}
	if creds.User != nil {
		data, err := json.Marshal(creds.User)
		if err != nil {
			errs = append(errs, fmt.Errorf("encode profile: %w", err))
		} else {
			errs = append(errs, s.storage.Set(storage.KeyAuthUser, string(data)))
		}
	} else {
		errs = append(errs, s.storage.Delete(storage.KeyAuthUser))
	}

	s.set(Session{IsAuthenticated: true, User: creds.User})

	if err := errors.Join(errs...); err != nil {
		return errors.Wrapf(err, "[Login] persist session")
	}
	return nil
}

// Logout is idempotent.
func (s *Store) Logout() error {
	var errs []error
	for _, key := range storage.SessionKeys {
		errs = append(errs, s.storage.Delete(key))
	}

	s.set(Session{})

	if err := errors.Join(errs...); err != nil {
		return errors.Wrapf(err, "[Logout] clear session")
	}
	return nil
}

func (s *Store) Subscribe(fn func(Session)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// set replaces the session and notifies subscribers outside the lock so they may call back into the store.
func (s *Store) set(session Session) {
	s.mu.Lock()
	s.session = session
	subscribers := make([]func(Session), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(session)
	}
}
