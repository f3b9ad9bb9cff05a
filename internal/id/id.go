package id

import "github.com/google/uuid"

// UUID generates a random UUID v4.
func UUID() string {
	return uuid.NewString()
}
