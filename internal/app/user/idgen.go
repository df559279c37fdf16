package user

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"userdir/internal/pkg/randx"
)

// IDPrefix starts every generated user id.
const IDPrefix = "user:"

// IDGenerator produces candidate user ids. Registry calls it while holding the
// store lock, so implementations must not block.
type IDGenerator interface {
	NewID() string
}

// RandomIDs draws "user:NNNN" with NNNN uniformly in [1000, 9999).
type RandomIDs struct{}

func (RandomIDs) NewID() string {
	return IDPrefix + strconv.Itoa(randx.UserIDDigits())
}

// SequentialIDs hands out strictly increasing ids starting at "user:1000".
type SequentialIDs struct {
	next atomic.Uint64
}

func (s *SequentialIDs) NewID() string {
	return IDPrefix + strconv.FormatUint(randx.UserIDMin+s.next.Add(1)-1, 10)
}

// UUIDIDs produces "user:<uuid v4>".
type UUIDIDs struct{}

func (UUIDIDs) NewID() string {
	return IDPrefix + randx.UUID()
}

// NewIDGenerator returns the generator for a configured scheme name.
func NewIDGenerator(scheme string) (IDGenerator, error) {
	switch scheme {
	case "random", "":
		return RandomIDs{}, nil
	case "sequence":
		return &SequentialIDs{}, nil
	case "uuid":
		return UUIDIDs{}, nil
	}
	return nil, fmt.Errorf("unknown user id scheme %q", scheme)
}
