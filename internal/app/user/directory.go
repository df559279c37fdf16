package user

// Directory answers read-only queries over a Store.
//
// The Find* lookups return the last record in insertion order whose field matches,
// or nil when none does. Registry.Update and Registry.Delete act on the first match
// instead; callers that rely on duplicates must keep both rules in mind.
type Directory struct {
	store *Store
}

// NewDirectory returns a Directory reading from store.
func NewDirectory(store *Store) *Directory {
	return &Directory{store: store}
}

// FindAll returns a copy of every record in insertion order.
func (d *Directory) FindAll() ([]User, error) {
	var all []User
	err := d.store.WithAccess(func(users *[]User) {
		all = make([]User, len(*users))
		copy(all, *users)
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

// FindByID returns the last record whose id equals id.
func (d *Directory) FindByID(id string) (*User, error) {
	return d.findLast(byID(id))
}

// FindByEmail returns the last record whose email equals email.
func (d *Directory) FindByEmail(email string) (*User, error) {
	return d.findLast(byEmail(email))
}

// FindByUsername returns the last record whose username equals username.
func (d *Directory) FindByUsername(username string) (*User, error) {
	return d.findLast(byUsername(username))
}

func (d *Directory) findLast(match func(u *User) bool) (*User, error) {
	var found *User
	err := d.store.WithAccess(func(users *[]User) {
		found = lastMatch(*users, match)
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}
