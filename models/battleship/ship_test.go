package battleship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinatesEquals(t *testing.T) {
	a := NewCoordinates(3, 4)
	b := NewCoordinates(3, 4)
	b.SetHit()

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(NewCoordinates(4, 3)))
	assert.Equal(t, "3,4", a.String())
}

func TestShipIndexOf(t *testing.T) {
	ship := NewShip(cells([2]int{2, 3}, [2]int{2, 4}, [2]int{2, 5})...)

	tests := []struct {
		name     string
		target   Coordinates
		expected int
	}{
		{name: "first cell", target: NewCoordinates(2, 3), expected: 0},
		{name: "last cell", target: NewCoordinates(2, 5), expected: 2},
		{name: "swapped row and col", target: NewCoordinates(3, 2), expected: -1},
		{name: "neighbour", target: NewCoordinates(2, 6), expected: -1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ship.IndexOf(test.target))
			assert.Equal(t, test.expected != -1, ship.Occupies(test.target))
		})
	}
	assert.Equal(t, 3, ship.Size())
}

func TestShipResolveShotMiss(t *testing.T) {
	ship := NewShip(cells([2]int{0, 0}, [2]int{0, 1})...)

	res := ship.ResolveShot(NewCoordinates(1, 1))
	assert.Equal(t, ShotResult{}, res)
	for _, c := range ship.Coordinates() {
		assert.False(t, c.IsHit())
	}
}

func TestShipSinksInAnyOrder(t *testing.T) {
	footprint := cells([2]int{4, 1}, [2]int{4, 2}, [2]int{4, 3})
	orders := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}

	for _, order := range orders {
		ship := NewShip(footprint...)
		for i, idx := range order {
			res := ship.ResolveShot(footprint[idx])
			require.True(t, res.Hit, "order %v shot %d", order, i)

			last := i == len(order)-1
			assert.Equal(t, last, res.Sank, "order %v shot %d", order, i)
			assert.Equal(t, last, ship.IsSunk())
		}
	}
}

func TestShipRepeatedHits(t *testing.T) {
	ship := NewShip(cells([2]int{0, 0}, [2]int{0, 1})...)

	res := ship.ResolveShot(NewCoordinates(0, 0))
	assert.Equal(t, ShotResult{Hit: true, Sank: false}, res)

	// hitting the same cell again must not sink the ship
	res = ship.ResolveShot(NewCoordinates(0, 0))
	assert.Equal(t, ShotResult{Hit: true, Sank: false}, res)

	res = ship.ResolveShot(NewCoordinates(0, 1))
	assert.Equal(t, ShotResult{Hit: true, Sank: true}, res)

	// once sunk, always sunk
	res = ship.ResolveShot(NewCoordinates(0, 1))
	assert.Equal(t, ShotResult{Hit: true, Sank: true}, res)
}

func TestShipCoordinatesIsACopy(t *testing.T) {
	ship := NewShip(cells([2]int{0, 0})...)

	cs := ship.Coordinates()
	cs[0].SetHit()

	assert.False(t, ship.IsSunk())
}

func TestPossibleSizes(t *testing.T) {
	sizes := PossibleSizes()
	assert.Equal(t, []int{2, 3, 3, 4, 5}, sizes)

	sizes[0] = 9
	assert.Equal(t, 2, PossibleSizes()[0])
}
