package pkg

import "github.com/google/uuid"

// GenerateGameID - generates a new unique id for a game session.
func GenerateGameID() string {
	return uuid.NewString()
}
