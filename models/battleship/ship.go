package battleship

// Sizes of the fleet in placement order.
var shipSizes = []int{2, 3, 3, 4, 5}

func PossibleSizes() []int {
	sizes := make([]int, len(shipSizes))
	copy(sizes, shipSizes)
	return sizes
}

type ShotResult struct {
	Hit  bool
	Sank bool
}

type Ship struct {
	cells []Coordinates
}

func NewShip(cells ...Coordinates) *Ship {
	owned := make([]Coordinates, len(cells))
	copy(owned, cells)
	return &Ship{cells: owned}
}

func (sh *Ship) Size() int {
	return len(sh.cells)
}

// Coordinates returns a copy of the ship's cells in placement order.
func (sh *Ship) Coordinates() []Coordinates {
	cells := make([]Coordinates, len(sh.cells))
	copy(cells, sh.cells)
	return cells
}

// IndexOf returns the position of the cell at c's row and col, or -1.
func (sh *Ship) IndexOf(c Coordinates) int {
	for i := range sh.cells {
		if sh.cells[i].Equals(c) {
			return i
		}
	}
	return -1
}

func (sh *Ship) Occupies(c Coordinates) bool {
	return sh.IndexOf(c) != -1
}

// ResolveShot marks the targeted cell as hit. Sank is recomputed from
// every cell on each call, so repeated shots at a sunk ship keep
// reporting it as sunk.
func (sh *Ship) ResolveShot(target Coordinates) ShotResult {
	idx := sh.IndexOf(target)
	if idx == -1 {
		return ShotResult{}
	}
	sh.cells[idx].SetHit()

	return ShotResult{Hit: true, Sank: sh.IsSunk()}
}

func (sh *Ship) IsSunk() bool {
	for _, c := range sh.cells {
		if !c.IsHit() {
			return false
		}
	}
	return true
}
