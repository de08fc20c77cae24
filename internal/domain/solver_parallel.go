package domain

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelSolver はルートの各手を別ゴルーチンで探索するソルバー
// 各ゴルーチンは自分のメモだけを使うので、結果は Solver と一致する
type ParallelSolver struct {
	evaluator Evaluator
	workers   int
}

// NewParallelSolver は新しいParallelSolverを生成する
func NewParallelSolver() *ParallelSolver {
	return &ParallelSolver{
		evaluator: &SnakeEvaluator{},
		workers:   runtime.GOMAXPROCS(0),
	}
}

// BestMove は現在の盤面から最良の手を返す（トップレベルのみ並列化）
func (s *ParallelSolver) BestMove(board Board) (Direction, bool) {
	return Best(s.Scores(board))
}

// Scores は合法手ごとの期待値を LegalActions の順で返す
func (s *ParallelSolver) Scores(board Board) []ScoredAction {
	actions := LegalActions(board)
	results := make([]ScoredAction, len(actions))

	// 1手しかない場合は並列化不要
	if len(actions) == 1 {
		sr := newSearcher(s.evaluator, true)
		results[0] = ScoredAction{Dir: actions[0].Dir, Board: actions[0].Board, Score: sr.search(actions[0].Board, SearchDepth, false)}
		return results
	}

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, a := range actions {
		g.Go(func() error {
			sr := newSearcher(s.evaluator, true)
			results[i] = ScoredAction{
				Dir:   a.Dir,
				Board: a.Board,
				Score: sr.search(a.Board, SearchDepth, false),
			}
			return nil
		})
	}
	// 探索はエラーを返さない
	_ = g.Wait()

	return results
}
