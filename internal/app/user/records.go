package user

import "slices"

// The helpers in this file work on the slice handed to a WithAccess callback.
// They never lock, so Directory, Registry and Tx share them without nesting.

func lastMatch(users []User, match func(u *User) bool) *User {
	for i := len(users) - 1; i >= 0; i-- {
		if match(&users[i]) {
			u := users[i]
			return &u
		}
	}
	return nil
}

func byID(id string) func(u *User) bool {
	return func(u *User) bool {
		return id != "" && u.ID == id
	}
}

func byEmail(email string) func(u *User) bool {
	return func(u *User) bool {
		return u.Email == email
	}
}

func byUsername(username string) func(u *User) bool {
	return func(u *User) bool {
		return u.Username == username
	}
}

func indexOfID(users []User, id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(users, func(u User) bool {
		return u.ID == id
	})
}

// insert gives u an unused id, appends it and returns the stored copy.
// It returns nil and leaves users untouched when no unused id could be drawn.
func insert(users *[]User, ids IDGenerator, u User) *User {
	id, ok := unusedID(*users, ids)
	if !ok {
		return nil
	}

	u.ID = id
	*users = append(*users, u)
	return &u
}

// unusedID draws candidates until one is non-empty and not held by any stored record.
func unusedID(users []User, ids IDGenerator) (string, bool) {
	for range maxIDAttempts {
		id := ids.NewID()
		if id != "" && indexOfID(users, id) < 0 {
			return id, true
		}
	}
	return "", false
}
