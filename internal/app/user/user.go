/*
Package user implements the in-memory user directory.

A single Store holds every User record behind one exclusive lock. Directory runs
read-only queries against it and Registry runs mutations; neither keeps a reference
to the collection between calls. All three are built once at startup and shared by
every request.
*/
package user

import "encoding/json"

// User is a directory record.
type User struct {
	// ID is assigned by Registry.Create and never changes afterwards. Empty means absent.
	ID string `json:"user_id"`

	// Username is meant to be unique across the directory.
	Username string `json:"username"`

	// Email is meant to be unique across the directory.
	Email string `json:"email"`

	// Description is free text, empty after registration.
	Description string `json:"description"`

	// Password holds the hex SHA-256 digest of the password when written by registration.
	Password string `json:"password"`
}

type userJSON struct {
	ID          *string `json:"user_id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Description string  `json:"description"`
	Password    string  `json:"password"`
}

// MarshalJSON writes an absent id as null.
func (u User) MarshalJSON() ([]byte, error) {
	out := userJSON{
		Username:    u.Username,
		Email:       u.Email,
		Description: u.Description,
		Password:    u.Password,
	}
	if u.ID != "" {
		out.ID = &u.ID
	}
	return json.Marshal(out)
}
