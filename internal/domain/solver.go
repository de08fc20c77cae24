package domain

// SearchDepth はルートの各手に対して探索する深さ（プレイヤー層とスポーン層を1ずつ消費する）
const SearchDepth = 5

// ScoredAction は合法手とその期待値
type ScoredAction struct {
	Dir   Direction
	Board Board
	Score float64
}

// Chooser は盤面から次の手を選ぶ
type Chooser interface {
	BestMove(board Board) (Direction, bool)
	Scores(board Board) []ScoredAction
}

// Solver はExpectimaxアルゴリズムで最良の手を探索する
type Solver struct {
	evaluator Evaluator
	memoize   bool
}

// NewSolver は新しいSolverを生成する
func NewSolver() *Solver {
	return &Solver{
		evaluator: &SnakeEvaluator{},
		memoize:   true,
	}
}

// BestMove は現在の盤面から最良の手を返す
// 有効な手がない場合はfalseを返す。同点なら Left, Down, Up, Right の順で先の手を選ぶ
func (s *Solver) BestMove(board Board) (Direction, bool) {
	return Best(s.Scores(board))
}

// Scores は合法手ごとの期待値を LegalActions の順で返す
// 手を適用した直後なので、各子は深さを減らさずにスポーン層から探索する
func (s *Solver) Scores(board Board) []ScoredAction {
	actions := LegalActions(board)
	results := make([]ScoredAction, len(actions))
	sr := newSearcher(s.evaluator, s.memoize)
	for i, a := range actions {
		results[i] = ScoredAction{
			Dir:   a.Dir,
			Board: a.Board,
			Score: sr.search(a.Board, SearchDepth, false),
		}
	}
	return results
}

// Search は盤面の深さ制限付きexpectimax値を返す
func (s *Solver) Search(board Board, depth int, playerTurn bool) float64 {
	return newSearcher(s.evaluator, s.memoize).search(board, depth, playerTurn)
}

// Best は期待値が最大の手を返す。同点なら先に並んでいる手を選ぶ
func Best(scored []ScoredAction) (Direction, bool) {
	if len(scored) == 0 {
		return 0, false
	}
	best := scored[0]
	for _, sa := range scored[1:] {
		if sa.Score > best.Score {
			best = sa
		}
	}
	return best.Dir, true
}

type memoKey struct {
	board      BitBoard
	depth      int
	playerTurn bool
}

// searcher は1回の探索で使う評価関数とメモを持つ
// メモはゴルーチン間で共有しない
type searcher struct {
	evaluator Evaluator
	memo      map[memoKey]float64
}

func newSearcher(evaluator Evaluator, memoize bool) *searcher {
	sr := &searcher{evaluator: evaluator}
	if memoize {
		sr.memo = make(map[memoKey]float64)
	}
	return sr
}

func (sr *searcher) search(board Board, depth int, playerTurn bool) float64 {
	if depth == 0 || (playerTurn && IsOver(board)) {
		return sr.evaluator.Evaluate(board)
	}

	var key memoKey
	cacheable := false
	if sr.memo != nil {
		if bb, ok := NewBitBoard(board); ok {
			key = memoKey{board: bb, depth: depth, playerTurn: playerTurn}
			if v, hit := sr.memo[key]; hit {
				return v
			}
			cacheable = true
		}
	}

	var v float64
	if playerTurn {
		v = sr.searchMax(board, depth)
	} else {
		v = sr.expectedScore(board, depth)
	}

	if cacheable {
		sr.memo[key] = v
	}
	return v
}

// searchMax はプレイヤーの最善手を探索
func (sr *searcher) searchMax(board Board, depth int) float64 {
	actions := LegalActions(board)
	if len(actions) == 0 {
		return sr.evaluator.Evaluate(board)
	}

	best := sr.search(actions[0].Board, depth-1, false)
	for _, a := range actions[1:] {
		if score := sr.search(a.Board, depth-1, false); score > best {
			best = score
		}
	}
	return best
}

// expectedScore は全ての空きマスに2と4が出る場合の期待値を計算する
// 空きマスが無ければ0
func (sr *searcher) expectedScore(board Board, depth int) float64 {
	emptyCells := board.EmptyCells()
	if len(emptyCells) == 0 {
		return 0
	}

	n := float64(len(emptyCells))
	total := 0.0
	for _, pos := range emptyCells {
		board2 := board.Set(pos[0], pos[1], 2)
		board4 := board.Set(pos[0], pos[1], 4)
		total += spawn2Prob*sr.search(board2, depth-1, true)/n +
			spawn4Prob*sr.search(board4, depth-1, true)/n
	}
	return total
}
