package board

import (
	"fmt"

	"github.com/google/uuid"
)

const idMaxAttempts = 20

// GenerateID returns a new random id, retrying on collisions reported by exists.
func GenerateID(exists func(string) bool) (string, error) {
	for i := 0; i < idMaxAttempts; i++ {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", err
		}
		if exists == nil || !exists(id.String()) {
			return id.String(), nil
		}
	}
	return "", fmt.Errorf("unable to generate unique id")
}
