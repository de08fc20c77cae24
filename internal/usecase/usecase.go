package usecase

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nnaakkaaii/expectimax2048/internal/domain"
)

// PlayGame はCLIで2048ゲームを実行する
// 手を選ぶたびにAIのおすすめも表示する
func PlayGame(r io.Reader, w io.Writer, rng domain.Rand, log zerolog.Logger) error {
	solver := domain.NewParallelSolver()
	game := domain.NewGame(rng, solver)
	reader := bufio.NewReader(r)

	fmt.Fprintln(w, "=== 2048 ===")
	fmt.Fprintln(w, "Controls: w=Up, s=Down, a=Left, d=Right, h=Hint, q=Quit")
	fmt.Fprintln(w)

	for {
		fmt.Fprint(w, game.Board())
		fmt.Fprintf(w, "Score: %d\n", game.Score())

		if game.IsGameOver() {
			fmt.Fprintln(w, "Game Over!")
			log.Info().Int("score", game.Score()).Int("max_tile", game.Board().MaxTile()).Msg("game-over")
			return nil
		}

		fmt.Fprint(w, "Move: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}

		input = strings.TrimSpace(strings.ToLower(input))
		switch input {
		case "q":
			fmt.Fprintln(w, "Quit.")
			return nil
		case "h":
			if dir, ok := solver.BestMove(game.Board()); ok {
				fmt.Fprintf(w, "Hint: %s\n\n", dir)
			}
			continue
		}

		dir, ok := parseDirection(input)
		if !ok {
			fmt.Fprintln(w, "Invalid input. Use w/a/s/d, h for a hint or q to quit.")
			continue
		}

		moved, err := game.Move(dir)
		if err != nil {
			return fmt.Errorf("move %s: %w", dir, err)
		}
		if !moved {
			fmt.Fprintln(w, "Cannot move in that direction.")
		}
		log.Debug().Str("dir", dir.String()).Bool("moved", moved).Int("score", game.Score()).Msg("player-move")
		fmt.Fprintln(w)
	}
}

func parseDirection(input string) (domain.Direction, bool) {
	switch input {
	case "w":
		return domain.Up, true
	case "s":
		return domain.Down, true
	case "a":
		return domain.Left, true
	case "d":
		return domain.Right, true
	default:
		return 0, false
	}
}
