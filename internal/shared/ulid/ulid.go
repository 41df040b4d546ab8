package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Used for request, run and report IDs.
var NewULID = func() string {
	return ulid.Make().String()
}

// IsValid reports whether s is a canonical 26 character ULID.
func IsValid(s string) bool {
	if len(s) != ulid.EncodedSize {
		return false
	}
	_, err := ulid.ParseStrict(s)
	return err == nil
}
