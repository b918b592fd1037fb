package connection

// States of the turn loop.
const (
	TurnAwaitingInput uint8 = iota
	TurnValidating
	TurnApplyingShot
	TurnTerminated
)

const QuitKeyword = "QUIT"
