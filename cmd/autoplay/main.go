package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/profile"
	_ "go.uber.org/automaxprocs"

	"github.com/nnaakkaaii/expectimax2048/internal/cli"
	"github.com/nnaakkaaii/expectimax2048/internal/usecase"
)

type options struct {
	delay       int
	sequential  bool
	quiet       bool
	noColor     bool
	clearScreen bool
	menu        bool
	seed        uint64
	cpuProfile  bool
}

func main() {
	var opts options
	flag.IntVar(&opts.delay, "delay", 0, "delay between moves (ms)")
	flag.BoolVar(&opts.sequential, "sequential", false, "search the root moves on a single goroutine")
	flag.BoolVar(&opts.quiet, "quiet", false, "only print the final board")
	flag.BoolVar(&opts.noColor, "no-color", false, "draw the board as ASCII instead of ANSI colors")
	flag.BoolVar(&opts.clearScreen, "clear", false, "clear the screen before every board")
	flag.BoolVar(&opts.menu, "menu", false, "show the start menu and play until q is entered")
	flag.Uint64Var(&opts.seed, "seed", 0, "random seed for tile spawns (0 = random)")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.BoolVar(&opts.cpuProfile, "profile", false, "write a CPU profile to the current directory")
	flag.Parse()

	log, err := cli.NewLogger(os.Stderr, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	config := usecase.DefaultAutoPlayConfig()
	config.Logger = log
	// os.Exit は defer を実行しないので、プロファイラは run の中で止める
	if err := run(os.Stdin, os.Stdout, opts, config); err != nil {
		log.Error().Err(err).Msg("autoplay failed")
		os.Exit(1)
	}
}

func run(r io.Reader, w io.Writer, opts options, config usecase.AutoPlayConfig) error {
	if opts.cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	config.Delay = time.Duration(opts.delay) * time.Millisecond
	config.UseParallel = !opts.sequential
	config.Verbose = !opts.quiet
	config.Color = !opts.noColor
	config.ClearScreen = opts.clearScreen

	rng := cli.NewRand(opts.seed)
	if opts.menu {
		_, err := usecase.Menu(r, w, rng, config)
		return err
	}
	_, err := usecase.AutoPlay(w, rng, config)
	return err
}
