/*
Package randx provides the random values used for user identifiers.
*/
package randx

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

const (
	// UserIDMin is the smallest numeric part of a random user id.
	UserIDMin = 1000

	// UserIDMax is the exclusive upper bound of the numeric part of a random user id.
	UserIDMax = 9999
)

// UserIDDigits returns a uniformly drawn integer in [UserIDMin, UserIDMax).
// It never blocks on OS entropy, so it is safe to call while holding a lock.
func UserIDDigits() int {
	return UserIDMin + rand.IntN(UserIDMax-UserIDMin)
}

// UUID returns a random (version 4) UUID string.
func UUID() string {
	return uuid.NewString()
}
