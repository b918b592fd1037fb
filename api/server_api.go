package api

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/saeidalz13/battleship-cli/internal"
	cerr "github.com/saeidalz13/battleship-cli/internal/error"
	"github.com/saeidalz13/battleship-cli/internal/logging"
	mb "github.com/saeidalz13/battleship-cli/models/battleship"
	mc "github.com/saeidalz13/battleship-cli/models/connection"
)

const (
	StageProd = logging.StageProd
	StageDev  = logging.StageDev
)

// Server hosts a single game on a console.
type Server struct {
	stage     string
	boardSize int
	endOnWin  bool
	rnd       mb.RandomSource
	log       logrus.FieldLogger
	gameUuid  string
}

type Option func(*Server) error

func NewServer(optFuncs ...Option) (*Server, error) {
	server := Server{
		stage:     StageProd,
		boardSize: mb.DefaultBoardSize,
		endOnWin:  true,
		gameUuid:  internal.NewGameID(),
	}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			return nil, err
		}
	}

	if server.rnd == nil {
		server.rnd = mb.NewSystemRandomSource()
	}
	if server.log == nil {
		server.log = logging.Discard()
	}
	server.log = server.log.WithField("game", server.gameUuid)

	return &server, nil
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return cerr.ErrInvalidStage(stage)
		}
		s.stage = stage
		return nil
	}
}

func WithBoardSize(size int) Option {
	return func(s *Server) error {
		minSize := slices.Max(mb.PossibleSizes())
		if size < minSize || size > mb.MaxBoardSize {
			return cerr.ErrInvalidBoardSize(size, minSize, mb.MaxBoardSize)
		}
		s.boardSize = size
		return nil
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Server) error {
		s.rnd = mb.NewRandomSource(seed)
		return nil
	}
}

func WithRandomSource(rnd mb.RandomSource) Option {
	return func(s *Server) error {
		s.rnd = rnd
		return nil
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Server) error {
		s.log = log
		return nil
	}
}

func WithEndOnWin(endOnWin bool) Option {
	return func(s *Server) error {
		s.endOnWin = endOnWin
		return nil
	}
}

func (s *Server) GameUuid() string {
	return s.gameUuid
}

// NewGame places a fresh fleet and wraps it in a board. Ship sizes are
// only revealed in the dev stage.
func (s *Server) NewGame() (*mb.Game, error) {
	player, err := mb.NewPlayer(s.boardSize, s.rnd, mb.WithPlacementLogger(s.log))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cerr.ConstErrSetupFailed, err)
	}

	board := mb.NewBoard(s.boardSize, player, mb.WithRevealedShips(s.stage == StageDev))
	s.log.WithFields(logrus.Fields{
		"stage":      s.stage,
		"board_size": s.boardSize,
		"ships":      len(player.Ships()),
	}).Info("game started")

	return mb.NewGame(s.gameUuid, board), nil
}

// Serve plays one game reading tokens from r and writing lines to w.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	game, err := s.NewGame()
	if err != nil {
		return err
	}

	session := mc.NewSession(
		game,
		mc.NewConsoleReader(r),
		mc.NewConsoleWriter(w),
		mc.WithEndOnWin(s.endOnWin),
		mc.WithSessionLogger(s.log),
	)
	return session.Run(ctx)
}
