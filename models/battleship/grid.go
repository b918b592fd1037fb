package battleship

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	CellEmpty rune = ' '
	CellHit   rune = 'X'
)

// Column labels, one per column of the largest board.
var Letters = []rune("ABCDEFGHIJ")

type Grid [][]rune

// Creates a new grid with every cell set to CellEmpty
func NewGrid(size int) Grid {
	grid := make(Grid, size)

	for i := 0; i < size; i++ {
		grid[i] = make([]rune, size)
		for j := range grid[i] {
			grid[i][j] = CellEmpty
		}
	}
	return grid
}

type Outcome uint8

const (
	OutcomeMiss Outcome = iota
	OutcomeHit
	OutcomeSank
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "Hit!"
	case OutcomeSank:
		return "You sank their battleship!"
	default:
		return "Miss!"
	}
}

// Board is the display projection of a player's fleet. The fleet stays the
// source of truth for hits; the grid only mirrors it.
type Board struct {
	size        int
	grid        Grid
	player      *Player
	revealShips bool
}

type BoardOption func(*Board)

// WithRevealedShips controls the debug view where every ship cell shows
// the ship's size. Ships are revealed by default.
func WithRevealedShips(reveal bool) BoardOption {
	return func(b *Board) {
		b.revealShips = reveal
	}
}

func NewBoard(size int, player *Player, opts ...BoardOption) *Board {
	b := &Board{
		size:        size,
		grid:        NewGrid(size),
		player:      player,
		revealShips: true,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.revealShips {
		b.placeShips()
	}
	return b
}

func (b *Board) placeShips() {
	for _, ship := range b.player.Ships() {
		mark := []rune(strconv.Itoa(ship.Size()))[0]
		for _, c := range ship.Coordinates() {
			if b.isWithinBounds(c.Row, c.Col) {
				b.grid[c.Row][c.Col] = mark
			}
		}
	}
}

func (b *Board) isWithinBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Player() *Player {
	return b.player
}

// LetterIndex maps a column letter to its index, or -1 when the letter is
// outside the board's columns.
func (b *Board) LetterIndex(letter rune) int {
	for i, l := range Letters[:min(b.size, len(Letters))] {
		if l == letter {
			return i
		}
	}
	return -1
}

// AttemptHit fires at (row, col). Ships are asked in placement order and
// the first one that reports a hit decides the outcome.
func (b *Board) AttemptHit(row, col int) Outcome {
	target := NewCoordinates(row, col)

	for _, ship := range b.player.Ships() {
		res := ship.ResolveShot(target)
		if !res.Hit {
			continue
		}

		if b.isWithinBounds(row, col) {
			b.grid[row][col] = CellHit
		}
		if res.Sank {
			return OutcomeSank
		}
		return OutcomeHit
	}
	return OutcomeMiss
}

func (b *Board) Cell(row, col int) rune {
	if !b.isWithinBounds(row, col) {
		return CellEmpty
	}
	return b.grid[row][col]
}

func (b *Board) AllShipsSunk() bool {
	return b.player.IsLoser()
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("     ")

	for col := 0; col < b.size; col++ {
		sb.WriteRune(Letters[col])
		sb.WriteString(" | ")
	}
	sb.WriteString("\n")

	for row := 0; row < b.size; row++ {
		fmt.Fprintf(&sb, "%2d | ", row)
		for col := 0; col < b.size; col++ {
			sb.WriteRune(b.grid[row][col])
			sb.WriteString(" | ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
