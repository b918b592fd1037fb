package connection

import (
	"fmt"

	mb "github.com/saeidalz13/battleship-cli/models/battleship"
)

const (
	MsgPrompt            = `Enter a coordinate (ex ("A0") or "quit" to stop playing).`
	MsgInvalidCoordinate = "Invalid coordinate. Please enter a valid coordinate."
	MsgFarewell          = "Thanks for playing!"
	MsgFleetSunk         = "You sank the whole fleet!"
)

func SummaryMessage(stats mb.Stats) string {
	return fmt.Sprintf(
		"Shots: %d  Hits: %d  Misses: %d  Ships sunk: %d/%d",
		stats.Shots, stats.Hits, stats.Misses, stats.ShipsSunk, stats.FleetSize,
	)
}
