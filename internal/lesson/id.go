package lesson

import "github.com/google/uuid"

// NewID returns a collision-free identifier for lessons, activities and
// media elements. Random UUIDs are used instead of creation timestamps so
// rapid creation can never collide.
func NewID() string {
	return uuid.NewString()
}
