package internal

import (
	"strings"

	"github.com/google/uuid"
)

// NewGameID returns a short id used to tag every log entry of one game.
func NewGameID() string {
	return uuid.NewString()[:6]
}

func NormalizeToken(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}
