package battleship

import (
	cerr "github.com/saeidalz13/battleship-cli/internal/error"
)

type Stats struct {
	Shots     int
	Hits      int
	Misses    int
	ShipsSunk int
	FleetSize int
}

type Game struct {
	Uuid       string
	isFinished bool
	board      *Board
	shots      int
	hits       int
}

func NewGame(uuid string, board *Board) *Game {
	return &Game{
		Uuid:  uuid,
		board: board,
	}
}

func (g *Game) Board() *Board {
	return g.board
}

// Shoot applies one shot and keeps the tally.
func (g *Game) Shoot(row, col int) (Outcome, error) {
	if !g.board.isWithinBounds(row, col) {
		return OutcomeMiss, cerr.ErrXorYOutOfGridBound(row, col)
	}

	outcome := g.board.AttemptHit(row, col)
	g.shots++
	if outcome != OutcomeMiss {
		g.hits++
	}
	if g.board.AllShipsSunk() {
		g.isFinished = true
	}
	return outcome, nil
}

// IsFinished is true once the whole fleet is sunk.
func (g *Game) IsFinished() bool {
	return g.isFinished
}

func (g *Game) Stats() Stats {
	player := g.board.Player()
	return Stats{
		Shots:     g.shots,
		Hits:      g.hits,
		Misses:    g.shots - g.hits,
		ShipsSunk: player.SunkenShips(),
		FleetSize: len(player.Ships()),
	}
}
