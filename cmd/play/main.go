package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nnaakkaaii/expectimax2048/internal/cli"
	"github.com/nnaakkaaii/expectimax2048/internal/usecase"
)

func main() {
	seed := flag.Uint64("seed", 0, "random seed for tile spawns (0 = random)")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	log, err := cli.NewLogger(os.Stderr, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := usecase.PlayGame(os.Stdin, os.Stdout, cli.NewRand(*seed), log); err != nil {
		log.Error().Err(err).Msg("play failed")
		os.Exit(1)
	}
}
