package usecase

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nnaakkaaii/expectimax2048/internal/domain"
)

var errQuit = errors.New("quit")

// Analyzer は入力された盤面に対して各方向の期待値を表示する対話ツール
type Analyzer struct {
	scanner *bufio.Scanner
	w       io.Writer
	rng     domain.Rand
	solver  domain.Chooser
	log     zerolog.Logger
}

// NewAnalyzer は新しいAnalyzerを生成する
func NewAnalyzer(r io.Reader, w io.Writer, rng domain.Rand, solver domain.Chooser, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		scanner: bufio.NewScanner(r),
		w:       w,
		rng:     rng,
		solver:  solver,
		log:     log,
	}
}

// Run は quit が入力されるか入力が尽きるまで盤面の解析を繰り返す
func (a *Analyzer) Run() error {
	fmt.Fprintln(a.w, "=== 2048 Interactive Analyzer ===")
	fmt.Fprintln(a.w, "Enter board state as 16 numbers (0 for empty), or 'quit' to exit")
	fmt.Fprintln(a.w, "Example: 0 0 0 0 0 0 0 0 0 0 0 0 0 0 2 2")
	fmt.Fprintln(a.w)

	for {
		board, err := a.inputBoard()
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := a.analyzeLoop(board); errors.Is(err, errQuit) {
			return nil
		} else if err != nil {
			return err
		}
	}
}

func (a *Analyzer) analyzeLoop(board domain.Board) error {
	for {
		fmt.Fprintln(a.w, "\nCurrent board:")
		fmt.Fprint(a.w, board)

		if domain.IsOver(board) {
			fmt.Fprintln(a.w, "Game Over!")
			return nil
		}

		scores := a.solver.Scores(board)
		best, _ := domain.Best(scores)
		a.printScores(scores, best)

		fmt.Fprintln(a.w, "\nOptions:")
		fmt.Fprintln(a.w, "  1. Apply suggested move and spawn a random tile")
		fmt.Fprintln(a.w, "  2. Apply suggested move and enter the new tile")
		fmt.Fprintln(a.w, "  3. Enter custom move and spawn a random tile")
		fmt.Fprintln(a.w, "  4. New board")
		fmt.Fprintln(a.w, "  5. Quit")
		fmt.Fprint(a.w, "Choice: ")

		choice, ok := a.readLine()
		if !ok {
			return errQuit
		}

		var next domain.Board
		var err error
		switch choice {
		case "1":
			next, err = domain.Spawn(board.Swipe(best), 1, a.rng)
		case "2":
			next, err = a.enterTile(board.Swipe(best))
		case "3":
			next, err = a.customMove(board)
		case "4":
			return nil
		case "5":
			return errQuit
		default:
			fmt.Fprintln(a.w, "Invalid choice")
			continue
		}
		if errors.Is(err, errQuit) {
			return err
		}
		if err != nil {
			fmt.Fprintf(a.w, "Error: %v\n", err)
			continue
		}
		board = next
	}
}

func (a *Analyzer) printScores(scores []domain.ScoredAction, best domain.Direction) {
	fmt.Fprintf(a.w, "\n=== Recommended move: %s ===\n", best)
	fmt.Fprintln(a.w, "\nMove scores:")
	for _, sa := range scores {
		fmt.Fprintf(a.w, "  %s: %.4f", sa.Dir, sa.Score)
		if sa.Dir == best {
			fmt.Fprint(a.w, " <- BEST")
		}
		fmt.Fprintln(a.w)
	}
	ev := a.log.Debug().Str("best", best.String())
	for _, sa := range scores {
		ev = ev.Float64(sa.Dir.String(), sa.Score)
	}
	ev.Msg("analysis")
}

func (a *Analyzer) readLine() (string, bool) {
	if !a.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.scanner.Text()), true
}

func (a *Analyzer) inputBoard() (domain.Board, error) {
	for {
		fmt.Fprintln(a.w, "Enter board (16 numbers separated by spaces, or 'quit'):")
		input, ok := a.readLine()
		if !ok || input == "quit" {
			return domain.Board{}, errQuit
		}

		board, err := ParseBoard(input)
		if err != nil {
			fmt.Fprintf(a.w, "Error: %v\n", err)
			continue
		}
		return board, nil
	}
}

// ParseBoard は空白区切りの16個の数値を行優先の盤面として読む
func ParseBoard(input string) (domain.Board, error) {
	parts := strings.Fields(input)
	if len(parts) != domain.Size*domain.Size {
		return domain.Board{}, fmt.Errorf("need exactly %d numbers, got %d", domain.Size*domain.Size, len(parts))
	}

	var board domain.Board
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return domain.Board{}, fmt.Errorf("parse cell %d: %w", i, err)
		}
		board[i] = v
	}
	if !board.Valid() {
		return domain.Board{}, errors.New("cells must be 0 or a power of two >= 2")
	}
	return board, nil
}

func (a *Analyzer) enterTile(moved domain.Board) (domain.Board, error) {
	fmt.Fprintln(a.w, moved)
	fmt.Fprint(a.w, "Enter new tile position (row col) and value (2 or 4): ")
	input, ok := a.readLine()
	if !ok {
		return moved, errQuit
	}

	parts := strings.Fields(input)
	if len(parts) != 3 {
		return moved, errors.New("format: row col value")
	}
	row, err1 := strconv.Atoi(parts[0])
	col, err2 := strconv.Atoi(parts[1])
	val, err3 := strconv.Atoi(parts[2])
	if err := errors.Join(err1, err2, err3); err != nil {
		return moved, err
	}
	if row < 0 || row >= domain.Size || col < 0 || col >= domain.Size {
		return moved, errors.New("invalid position")
	}
	if moved.Get(row, col) != 0 {
		return moved, errors.New("cell is not empty")
	}
	if val != 2 && val != 4 {
		return moved, errors.New("value must be 2 or 4")
	}
	return moved.Set(row, col, val), nil
}

func (a *Analyzer) customMove(board domain.Board) (domain.Board, error) {
	fmt.Fprint(a.w, "Enter direction (u/d/l/r): ")
	input, ok := a.readLine()
	if !ok {
		return board, errQuit
	}
	dir, ok := domain.ParseDirection(input)
	if !ok {
		return board, errors.New("invalid direction")
	}
	moved := board.Swipe(dir)
	if moved.Equal(board) {
		return board, fmt.Errorf("cannot move %s", dir)
	}
	return domain.Spawn(moved, 1, a.rng)
}
