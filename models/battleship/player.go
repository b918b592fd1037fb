package battleship

import (
	"github.com/sirupsen/logrus"

	cerr "github.com/saeidalz13/battleship-cli/internal/error"
)

const (
	DefaultBoardSize = 10
	// Rows are typed as one digit and columns as one letter of Letters.
	MaxBoardSize = 10

	DefaultMaxPlacementAttempts = 100
)

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Player owns the fleet. The ship list is fixed once placement is done;
// only the hit flags of the cells change during play.
type Player struct {
	ships []*Ship
}

type placement struct {
	sizes       []int
	maxAttempts int
	truncate    bool
	log         logrus.FieldLogger
}

type PlacementOption func(*placement)

func WithMaxAttempts(attempts int) PlacementOption {
	return func(p *placement) {
		if attempts > 0 {
			p.maxAttempts = attempts
		}
	}
}

// WithTruncateOnCollision stops placing ships at the first collision and
// keeps the ships placed so far instead of retrying.
func WithTruncateOnCollision() PlacementOption {
	return func(p *placement) {
		p.truncate = true
	}
}

func WithShipSizes(sizes ...int) PlacementOption {
	return func(p *placement) {
		p.sizes = sizes
	}
}

func WithPlacementLogger(log logrus.FieldLogger) PlacementOption {
	return func(p *placement) {
		p.log = log
	}
}

// NewPlayer places the fleet at random on a boardSize x boardSize board.
func NewPlayer(boardSize int, rnd RandomSource, opts ...PlacementOption) (*Player, error) {
	cfg := placement{
		sizes:       PossibleSizes(),
		maxAttempts: DefaultMaxPlacementAttempts,
		log:         logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, size := range cfg.sizes {
		if size <= 0 || size > boardSize {
			return nil, cerr.ErrShipTooLarge(size, boardSize)
		}
	}

	p := &Player{ships: make([]*Ship, 0, len(cfg.sizes))}
	for _, size := range cfg.sizes {
		placed := false
		for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
			cells, ok := p.tryPlace(boardSize, size, rnd)
			if ok {
				p.ships = append(p.ships, NewShip(cells...))
				placed = true
				break
			}

			if cfg.truncate {
				cfg.log.WithFields(logrus.Fields{
					"ship_size": size,
					"placed":    len(p.ships),
				}).Warn("ship collided, fleet truncated")
				return p, nil
			}
			cfg.log.WithFields(logrus.Fields{
				"ship_size": size,
				"attempt":   attempt,
			}).Debug("ship collided, retrying placement")
		}

		if !placed {
			return nil, cerr.ErrFleetPlacement(size, cfg.maxAttempts)
		}
	}
	return p, nil
}

// NewPlayerWithShips builds a player around an already placed fleet.
func NewPlayerWithShips(ships ...*Ship) *Player {
	return &Player{ships: ships}
}

// Draws, in order: orientation, start row, start col.
func (p *Player) tryPlace(boardSize, size int, rnd RandomSource) ([]Coordinates, bool) {
	orientation := Orientation(rnd.IntN(2))
	row := rnd.IntN(boardSize)
	col := rnd.IntN(boardSize)

	// slide the start back along the ship's axis until the ship fits
	if orientation == Vertical {
		row = min(row, boardSize-size)
	} else {
		col = min(col, boardSize-size)
	}

	cells := footprint(NewCoordinates(row, col), size, orientation)
	for _, c := range cells {
		if !inBounds(c, boardSize) || p.IsInUse(c) {
			return nil, false
		}
	}
	return cells, true
}

func footprint(start Coordinates, size int, orientation Orientation) []Coordinates {
	cells := make([]Coordinates, 0, size)
	for i := 0; i < size; i++ {
		if orientation == Vertical {
			cells = append(cells, NewCoordinates(start.Row+i, start.Col))
		} else {
			cells = append(cells, NewCoordinates(start.Row, start.Col+i))
		}
	}
	return cells
}

func inBounds(c Coordinates, boardSize int) bool {
	return c.Row >= 0 && c.Row < boardSize && c.Col >= 0 && c.Col < boardSize
}

func (p *Player) Ships() []*Ship {
	return p.ships
}

// IsInUse reports whether any ship of the fleet covers c.
func (p *Player) IsInUse(c Coordinates) bool {
	for _, ship := range p.ships {
		if ship.Occupies(c) {
			return true
		}
	}
	return false
}

func (p *Player) SunkenShips() int {
	sunk := 0
	for _, ship := range p.ships {
		if ship.IsSunk() {
			sunk++
		}
	}
	return sunk
}

// IsLoser is true once every ship of a non-empty fleet is sunk.
func (p *Player) IsLoser() bool {
	return len(p.ships) > 0 && p.SunkenShips() == len(p.ships)
}
