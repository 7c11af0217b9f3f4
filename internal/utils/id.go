package utils

import "github.com/oklog/ulid/v2"

// NewID returns a new ULID string. IDs generated later sort after earlier ones.
func NewID() string {
	return ulid.Make().String()
}
