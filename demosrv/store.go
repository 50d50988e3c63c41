package demosrv

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// StoredUser is the server-side user record.
type StoredUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Job       string    `json:"job"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the in-memory user table backing the demo endpoints.
type Store struct {
	mu    sync.RWMutex
	users map[string]StoredUser
}

// NewStore returns a store seeded with a few sample users so the GET demo
// has something to show on first launch.
func NewStore() *Store {
	s := &Store{users: make(map[string]StoredUser)}
	seeds := []struct{ name, job string }{
		{"Ada Lovelace", "analyst"},
		{"Grace Hopper", "compiler engineer"},
		{"Alan Turing", "cryptographer"},
	}
	for _, seed := range seeds {
		s.Create(seed.name, seed.job)
	}
	return s
}

// List returns all users ordered by creation time, then name.
func (s *Store) List() []StoredUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := lo.Values(s.users)
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.Before(users[j].CreatedAt)
		}
		return users[i].Name < users[j].Name
	})
	return users
}

func (s *Store) Get(id string) (StoredUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *Store) Create(name, job string) StoredUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := StoredUser{
		ID:        uuid.NewString(),
		Name:      name,
		Job:       job,
		CreatedAt: time.Now().UTC(),
	}
	s.users[u.ID] = u
	return u
}

func (s *Store) Update(id, name, job string) (StoredUser, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return StoredUser{}, false
	}
	u.Name = name
	u.Job = job
	s.users[id] = u
	return u, true
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	return true
}
