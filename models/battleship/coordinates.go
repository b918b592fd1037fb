package battleship

import "fmt"

// Coordinates is a single cell of the board. The hit flag only ever goes
// from false to true. Bounds are the caller's concern.
type Coordinates struct {
	Row int
	Col int
	hit bool
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

func (c Coordinates) IsHit() bool {
	return c.hit
}

func (c *Coordinates) SetHit() {
	c.hit = true
}

// Equals compares position only; the hit flag is ignored.
func (c Coordinates) Equals(other Coordinates) bool {
	return c.Row == other.Row && c.Col == other.Col
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}
