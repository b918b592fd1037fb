package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGameID(t *testing.T) {
	a, b := NewGameID(), NewGameID()
	assert.Len(t, a, 6)
	assert.NotEqual(t, a, b)
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "QUIT", NormalizeToken(" quit\n"))
	assert.Equal(t, "C7", NormalizeToken("c7"))
	assert.Equal(t, "", NormalizeToken(""))
}
