package domain

import "errors"

// ErrGameOver は終局後に手を進めようとした場合に返される
var ErrGameOver = errors.New("game is over")

// Turn は1ターンの結果
type Turn struct {
	Dir    Direction
	Scores []ScoredAction
	Gained int
	Board  Board
	Over   bool
}

// Game は2048ゲームの状態を管理する
type Game struct {
	board   Board
	score   int
	moves   int
	rng     Rand
	chooser Chooser
}

// NewGame は2枚のタイルを置いた盤面で新しいゲームを開始する
func NewGame(rng Rand, chooser Chooser) *Game {
	return &Game{
		board:   InitialBoard(rng),
		rng:     rng,
		chooser: chooser,
	}
}

// Board は現在の盤面を返す
func (g *Game) Board() Board {
	return g.board
}

// Score は合体で得たスコアの合計を返す
func (g *Game) Score() int {
	return g.score
}

// Moves はこれまでに進めた手数を返す
func (g *Game) Moves() int {
	return g.moves
}

// IsGameOver はゲームオーバーかどうかを返す
func (g *Game) IsGameOver() bool {
	return IsOver(g.board)
}

// Step はAIに手を選ばせて1ターン進める
// 手の適用、1枚のスポーン、終局判定までを行う
func (g *Game) Step() (Turn, error) {
	if g.IsGameOver() {
		return Turn{Board: g.board, Over: true}, ErrGameOver
	}

	scores := g.chooser.Scores(g.board)
	dir, ok := Best(scores)
	if !ok {
		return Turn{Board: g.board, Over: true}, ErrGameOver
	}

	gained, err := g.apply(dir)
	if err != nil {
		return Turn{}, err
	}
	return Turn{
		Dir:    dir,
		Scores: scores,
		Gained: gained,
		Board:  g.board,
		Over:   g.IsGameOver(),
	}, nil
}

// Move は指定した方向にスワイプを実行する
// 盤面が変化した場合はtrueを返す
func (g *Game) Move(dir Direction) (bool, error) {
	moved, _ := g.board.SwipeWithScore(dir)
	if moved.Equal(g.board) {
		return false, nil
	}
	if _, err := g.apply(dir); err != nil {
		return false, err
	}
	return true, nil
}

func (g *Game) apply(dir Direction) (int, error) {
	moved, gained := g.board.SwipeWithScore(dir)
	next, err := Spawn(moved, 1, g.rng)
	if err != nil {
		return 0, err
	}
	g.board = next
	g.score += gained
	g.moves++
	return gained, nil
}
