package scheduling

import "github.com/google/uuid"

// newID generates a fresh opaque identifier for a generated Schedule.
func newID() string {
	return uuid.NewString()
}
