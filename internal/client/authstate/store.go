package authstate

import (
	"medadmin-service/internal/pkg/dto/responses"
	"sync"

	"go.uber.org/zap"
)

// Store holds the current token and profile. Login, refresh and logout write it;
// every authenticated request reads it.
type Store struct {
	Log       *zap.Logger
	persister Persister

	mu    sync.RWMutex
	token string
	user  *responses.User
}

// NewStore restores the last persisted session. A nil persister keeps the state in memory only.
func NewStore(persister Persister, logger *zap.Logger) (*Store, error) {
	if persister == nil {
		persister = NewMemoryPersister(Snapshot{})
	}
	snapshot, err := persister.Load()
	if err != nil {
		return nil, err
	}
	return &Store{
		Log:       logger,
		persister: persister,
		token:     snapshot.Token,
		user:      copyUser(snapshot.User),
	}, nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) User() *responses.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUser(s.user)
}

func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *Store) SetSession(token string, user *responses.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = copyUser(user)
	return s.persistLocked()
}

func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	err := s.persister.Save(Snapshot{Token: s.token, User: copyUser(s.user)})
	if err != nil {
		s.Log.Error("authStore.persist error saving auth state", zap.Error(err))
	}
	return err
}

func copyUser(user *responses.User) *responses.User {
	if user == nil {
		return nil
	}
	clone := *user
	return &clone
}
