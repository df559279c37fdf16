package user

// Tx is the locked collection handed to a Registry.Atomically callback.
// Its lookups and inserts follow the same rules as Directory and Registry.Create.
// A Tx is only valid for the duration of the callback.
type Tx struct {
	users *[]User
	ids   IDGenerator
}

// FindByEmail returns the last record whose email equals email, or nil.
func (tx *Tx) FindByEmail(email string) *User {
	return lastMatch(*tx.users, byEmail(email))
}

// FindByUsername returns the last record whose username equals username, or nil.
func (tx *Tx) FindByUsername(username string) *User {
	return lastMatch(*tx.users, byUsername(username))
}

// Create assigns u a fresh id and appends it. It returns nil when no unused id could be drawn.
func (tx *Tx) Create(u User) *User {
	return insert(tx.users, tx.ids, u)
}
