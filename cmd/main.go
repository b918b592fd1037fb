package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/saeidalz13/battleship-cli/api"
	"github.com/saeidalz13/battleship-cli/internal/logging"
)

func main() {
	if os.Getenv("STAGE") != api.StageProd {
		// a console game runs fine without a .env file
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = api.StageProd
	}

	log, err := logging.New(stage, os.Getenv("BATTLESHIP_LOG_FILE"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := []api.Option{
		api.WithStage(stage),
		api.WithLogger(log),
		api.WithEndOnWin(os.Getenv("BATTLESHIP_END_ON_WIN") != "0"),
	}
	if seedEnv := os.Getenv("BATTLESHIP_SEED"); seedEnv != "" {
		seed, err := strconv.ParseUint(seedEnv, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid BATTLESHIP_SEED %q: %s\n", seedEnv, err)
			os.Exit(1)
		}
		opts = append(opts, api.WithSeed(seed))
	}

	server, err := api.NewServer(opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := server.Serve(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Error("game ended with error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
