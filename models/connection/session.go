package connection

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/saeidalz13/battleship-cli/internal"
	mb "github.com/saeidalz13/battleship-cli/models/battleship"
)

// Session drives one game over a console. It is the only owner of the
// game state and runs on a single goroutine.
type Session struct {
	game        *mb.Game
	in          TokenReader
	out         LineWriter
	log         logrus.FieldLogger
	endOnWin    bool
	state       uint8
	lastOutcome *mb.Outcome
}

type SessionOption func(*Session)

// WithEndOnWin ends the session once the whole fleet is sunk. Without it
// play only ends on quit.
func WithEndOnWin(endOnWin bool) SessionOption {
	return func(s *Session) {
		s.endOnWin = endOnWin
	}
}

func WithSessionLogger(log logrus.FieldLogger) SessionOption {
	return func(s *Session) {
		s.log = log
	}
}

func NewSession(game *mb.Game, in TokenReader, out LineWriter, opts ...SessionOption) *Session {
	s := &Session{
		game:     game,
		in:       in,
		out:      out,
		log:      logrus.StandardLogger(),
		endOnWin: true,
		state:    TurnAwaitingInput,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("game", game.Uuid)
	return s
}

func (s *Session) State() uint8 {
	return s.state
}

// Run plays turns until the player quits, the input ends, the fleet is
// sunk (when enabled) or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	defer func() { s.state = TurnTerminated }()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.render(); err != nil {
			return err
		}

		if s.endOnWin && s.game.IsFinished() {
			s.log.WithFields(logrus.Fields{"shots": s.game.Stats().Shots}).Info("fleet sunk")
			return s.farewell(MsgFleetSunk)
		}

		row, col, quit, err := s.awaitCoordinate()
		if err != nil {
			return err
		}
		if quit {
			s.log.Info("player quit")
			return s.farewell(MsgFarewell)
		}

		s.state = TurnApplyingShot
		outcome, err := s.game.Shoot(row, col)
		if err != nil {
			return err
		}
		s.lastOutcome = &outcome
		s.log.WithFields(logrus.Fields{
			"row":     row,
			"col":     col,
			"outcome": outcome.String(),
		}).Debug("shot fired")
	}
}

func (s *Session) render() error {
	if err := s.write(s.game.Board().String()); err != nil {
		return err
	}
	if s.lastOutcome != nil {
		return s.write(s.lastOutcome.String())
	}
	return nil
}

// awaitCoordinate prompts until it gets a valid coordinate or the quit
// keyword. Invalid tokens do not consume a turn.
func (s *Session) awaitCoordinate() (row, col int, quit bool, err error) {
	for {
		s.state = TurnAwaitingInput
		if err := s.write(MsgPrompt); err != nil {
			return 0, 0, false, err
		}

		token, err := s.in.ReadToken()
		if errors.Is(err, io.EOF) {
			s.log.Info("input closed")
			return 0, 0, true, nil
		}
		if err != nil {
			return 0, 0, false, NewConsoleErr(ConsoleReadFailed, err).AddDesc("failed to read coordinate")
		}

		s.state = TurnValidating
		if internal.NormalizeToken(token) == QuitKeyword {
			return 0, 0, true, nil
		}

		row, col, err := ParseCoord(token, s.game.Board())
		if err != nil {
			s.log.WithField("token", token).Debug(err)
			if err := s.write(MsgInvalidCoordinate); err != nil {
				return 0, 0, false, err
			}
			continue
		}
		return row, col, false, nil
	}
}

func (s *Session) farewell(msg string) error {
	if err := s.write(msg); err != nil {
		return err
	}
	return s.write(SummaryMessage(s.game.Stats()))
}

func (s *Session) write(line string) error {
	if err := s.out.WriteLine(line); err != nil {
		return NewConsoleErr(ConsoleWriteFailed, err).AddDesc("failed to write to console")
	}
	return nil
}
