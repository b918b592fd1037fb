package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrSetupFailed = "game setup failed"
)

// Returned by the fleet placement when random attempts run out.
var ErrPlacementExhausted = errors.New("fleet placement exhausted its attempts")

func ErrShipTooLarge(shipSize, boardSize int) error {
	return fmt.Errorf("ship does not fit on the board\tship size: %d\tboard size: %d", shipSize, boardSize)
}

func ErrFleetPlacement(shipSize, attempts int) error {
	return fmt.Errorf("%w\tship size: %d\tattempts: %d", ErrPlacementExhausted, shipSize, attempts)
}

func ErrInvalidBoardSize(size, min, max int) error {
	return fmt.Errorf("board size must be between %d and %d, got: %d", min, max, size)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("stage must be either dev or prod, got: %s", stage)
}

func ErrInvalidCoordinate(token string) error {
	return fmt.Errorf("invalid coordinate: %q", token)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("incoming x or y is out of game grid bound\tx: %d\ty: %d", x, y)
}
