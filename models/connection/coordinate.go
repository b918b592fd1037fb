package connection

import (
	"slices"

	"github.com/saeidalz13/battleship-cli/internal"
	cerr "github.com/saeidalz13/battleship-cli/internal/error"
	mb "github.com/saeidalz13/battleship-cli/models/battleship"
)

// IsValidCoord accepts exactly one column letter of the board followed by
// one digit. The token is expected in upper case already.
func IsValidCoord(coord string, boardSize int) bool {
	if len(coord) != 2 {
		return false
	}

	letter := rune(coord[0])
	digit := coord[1]

	columns := mb.Letters[:min(max(boardSize, 0), len(mb.Letters))]
	if !slices.Contains(columns, letter) {
		return false
	}
	return digit >= '0' && digit <= '9'
}

// ParseCoord turns a raw token such as "c7" into row and col on board.
func ParseCoord(token string, board *mb.Board) (row, col int, err error) {
	coord := internal.NormalizeToken(token)
	if !IsValidCoord(coord, board.Size()) {
		return 0, 0, cerr.ErrInvalidCoordinate(token)
	}

	col = board.LetterIndex(rune(coord[0]))
	row = int(coord[1] - '0')
	if row >= board.Size() {
		return 0, 0, cerr.ErrXorYOutOfGridBound(row, col)
	}
	return row, col, nil
}
