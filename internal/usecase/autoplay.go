package usecase

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/nnaakkaaii/expectimax2048/internal/domain"
)

// AutoPlayConfig は自動プレイの設定
type AutoPlayConfig struct {
	Delay       time.Duration
	UseParallel bool
	Verbose     bool
	Color       bool
	// ClearScreen は毎ターン画面を消してから盤面を描く
	ClearScreen bool
	Logger      zerolog.Logger
	// Chooser が nil なら UseParallel に応じたソルバーを使う
	Chooser domain.Chooser
}

// DefaultAutoPlayConfig はデフォルトの設定を返す
func DefaultAutoPlayConfig() AutoPlayConfig {
	return AutoPlayConfig{
		Delay:       0,
		UseParallel: true,
		Verbose:     true,
		Color:       true,
		ClearScreen: false,
		Logger:      zerolog.Nop(),
	}
}

// Result は1ゲームの結果
type Result struct {
	Score   int
	Moves   int
	MaxTile int
	Board   domain.Board
}

func (c AutoPlayConfig) chooser() domain.Chooser {
	if c.Chooser != nil {
		return c.Chooser
	}
	if c.UseParallel {
		return domain.NewParallelSolver()
	}
	return domain.NewSolver()
}

// AutoPlay は終局までAIでゲームをプレイする
func AutoPlay(w io.Writer, rng domain.Rand, config AutoPlayConfig) (Result, error) {
	log := config.Logger
	game := domain.NewGame(rng, config.chooser())

	log.Info().
		Bool("parallel", config.UseParallel).
		Int("depth", domain.SearchDepth).
		Msg("game-start")

	if config.Verbose {
		fmt.Fprintln(w, "=== 2048 AutoPlay ===")
	}

	for !game.IsGameOver() {
		if config.Verbose {
			drawBoard(w, game.Board(), config)
			fmt.Fprintf(w, "Score: %d, Moves: %d\n", game.Score(), game.Moves())
		}

		started := time.Now()
		turn, err := game.Step()
		if errors.Is(err, domain.ErrGameOver) {
			break
		}
		if err != nil {
			log.Err(err).Int("moves", game.Moves()).Msg("step failed")
			return Result{}, fmt.Errorf("move %d: %w", game.Moves()+1, err)
		}

		ev := log.Debug().
			Int("move", game.Moves()).
			Str("dir", turn.Dir.String()).
			Int("gained", turn.Gained).
			Int("empty", turn.Board.CountEmpty()).
			Dur("took", time.Since(started))
		for _, sa := range turn.Scores {
			ev = ev.Float64(sa.Dir.String(), sa.Score)
		}
		ev.Msg("turn")

		if config.Verbose {
			fmt.Fprintf(w, "Move: %s\n\n", turn.Dir)
		}

		if config.Delay > 0 {
			time.Sleep(config.Delay)
		}
	}

	result := Result{
		Score:   game.Score(),
		Moves:   game.Moves(),
		MaxTile: game.Board().MaxTile(),
		Board:   game.Board(),
	}

	// 最終結果は常に表示
	fmt.Fprintf(w, "game over...best was %d\n", result.MaxTile)
	drawBoard(w, result.Board, config)
	fmt.Fprintf(w, "Final Score: %d\n", result.Score)
	fmt.Fprintf(w, "Total Moves: %d\n", result.Moves)

	log.Info().
		Int("max_tile", result.MaxTile).
		Int("score", result.Score).
		Int("moves", result.Moves).
		Msg("game-over")

	return result, nil
}

func drawBoard(w io.Writer, b domain.Board, config AutoPlayConfig) {
	if config.ClearScreen {
		fmt.Fprint(w, clearScreen)
	}
	if config.Color {
		fmt.Fprint(w, ColorBoard(b))
		fmt.Fprintln(w)
		return
	}
	fmt.Fprint(w, b)
}
