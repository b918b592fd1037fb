package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	DefaultLogFile = "battleship.log"

	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 7
)

// New builds the game logger. Stdout belongs to the board, so entries are
// written to a rotating file only.
func New(stage, path string) (*logrus.Logger, error) {
	level := logrus.InfoLevel
	if stage == StageDev {
		level = logrus.DebugLevel
	}
	if path == "" {
		path = DefaultLogFile
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create log file hook: %w", err)
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetOutput(io.Discard)
	log.AddHook(hook)
	return log, nil
}

// Discard returns a logger that drops everything, handy in tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
