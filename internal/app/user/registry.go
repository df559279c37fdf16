package user

import (
	"slices"

	"github.com/rs/zerolog"

	"userdir/internal/pkg/logx"
)

// maxIDAttempts bounds how many candidates Create draws before giving up on a free id.
const maxIDAttempts = 64

// Registry performs the mutating operations over a Store.
//
// None of its methods check username or email uniqueness; that belongs to the
// registration workflow. Update and Delete act on the first record with a matching id.
type Registry struct {
	store  *Store
	ids    IDGenerator
	logger zerolog.Logger
}

// NewRegistry returns a Registry writing to store and drawing ids from ids.
func NewRegistry(store *Store, ids IDGenerator) *Registry {
	return &Registry{
		store:  store,
		ids:    ids,
		logger: logx.Component("Registry"),
	}
}

// Create assigns a fresh id to u (replacing any id it carries), appends it and
// returns the stored copy. It returns nil when no unused id could be drawn.
func (r *Registry) Create(u User) (*User, error) {
	var created *User
	err := r.store.WithAccess(func(users *[]User) {
		created = insert(users, r.ids, u)
	})
	if err != nil {
		return nil, err
	}

	if created == nil {
		r.logger.Warn().Int("attempts", maxIDAttempts).Msg("No unused user id could be drawn.")
		return nil, nil
	}

	r.logger.Debug().Str("user_id", created.ID).Msg("User created.")
	return created, nil
}

// Update replaces the first record whose id equals id with payload, keeping id as
// the record's id whatever payload.ID holds. It returns nil if no record matches.
func (r *Registry) Update(id string, payload User) (*User, error) {
	var updated *User
	err := r.store.WithAccess(func(users *[]User) {
		i := indexOfID(*users, id)
		if i < 0 {
			return
		}

		payload.ID = id
		(*users)[i] = payload
		updated = &payload
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the first record whose id equals id and returns it, or nil if none matches.
func (r *Registry) Delete(id string) (*User, error) {
	var removed *User
	err := r.store.WithAccess(func(users *[]User) {
		i := indexOfID(*users, id)
		if i < 0 {
			return
		}

		u := (*users)[i]
		*users = slices.Delete(*users, i, i+1)
		removed = &u
	})
	if err != nil {
		return nil, err
	}

	if removed != nil {
		r.logger.Debug().Str("user_id", id).Msg("User deleted.")
	}
	return removed, nil
}

// Atomically runs fn with a Tx over the store while holding the lock once, so a
// sequence of lookups followed by a Create cannot interleave with other writers.
// fn must not call back into the Directory or Registry.
func (r *Registry) Atomically(fn func(tx *Tx)) error {
	return r.store.WithAccess(func(users *[]User) {
		fn(&Tx{users: users, ids: r.ids})
	})
}
