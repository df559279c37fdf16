package user

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"userdir/internal/pkg/logx"
)

// ErrStorePoisoned is returned by every access after a callback panicked while holding the lock.
// The collection may be half-mutated at that point, so the store refuses further use.
var ErrStorePoisoned = errors.New("user store is poisoned: a previous holder panicked")

// Store is the single ordered collection of User records.
// Reads and writes take the same exclusive lock; there is no reader/writer split.
type Store struct {
	// mu guards users and poisoned.
	mu sync.Mutex

	// users is kept in insertion order.
	users []User

	// poisoned is set when a WithAccess callback panics.
	poisoned bool

	logger zerolog.Logger
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:  make([]User, 0),
		logger: logx.Component("UserStore"),
	}
}

// WithAccess runs fn against the live collection while holding the lock.
// The lock is released on every exit path. If fn panics the store is poisoned
// and the panic continues up the caller's stack; later calls return ErrStorePoisoned
// without running fn. fn must not retain the slice or call back into the store.
func (s *Store) WithAccess(fn func(users *[]User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned {
		return ErrStorePoisoned
	}

	completed := false
	defer func() {
		if completed {
			return
		}

		s.poisoned = true
		r := recover()
		s.logger.Error().
			Err(fmt.Errorf("holder did not return: %v", r)).
			Msg("User store poisoned")

		if r != nil {
			panic(r)
		}
	}()

	fn(&s.users)
	completed = true
	return nil
}

// Len returns the number of stored records.
func (s *Store) Len() (int, error) {
	var n int
	err := s.WithAccess(func(users *[]User) {
		n = len(*users)
	})
	return n, err
}
