package idgen

import "github.com/google/uuid"

// NewFunc returns a new run identifier; version 7 ids sort by creation time.
var NewFunc = func() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// New returns a new run identifier.
func New() string { return NewFunc() }
