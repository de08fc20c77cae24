package domain

import "math"

// Evaluator はBoardを評価してスコアを返すインターフェース
type Evaluator interface {
	Evaluate(b Board) float64
}

// SnakeEvaluator はスネークパターンに沿った配置を高評価し、
// 最大タイルが左下の角にないと二乗のペナルティを課す
type SnakeEvaluator struct{}

// snakeOrder は左の列から順に、偶数列は下から上、奇数列は上から下へたどるセル番号
// 左下の角が先頭になる
var snakeOrder = buildSnakeOrder()

func buildSnakeOrder() [Size * Size]int {
	var order [Size * Size]int
	n := 0
	for c := 0; c < Size; c++ {
		for i := 0; i < Size; i++ {
			r := i
			if c%2 == 0 {
				r = Size - 1 - i
			}
			order[n] = r*Size + c
			n++
		}
	}
	return order
}

// Evaluate は Fitness を返す
func (e *SnakeEvaluator) Evaluate(b Board) float64 {
	return Fitness(b)
}

// Fitness は探索を打ち切った盤面の静的評価値
// 終局なら -Inf、それ以外はスネーク順 n 番目の値を 10^n で割った総和から角ペナルティを引く
func Fitness(b Board) float64 {
	if IsOver(b) {
		return math.Inf(-1)
	}

	score := 0.0
	for n, idx := range snakeOrder {
		score += float64(b[idx]) / math.Pow10(n)
	}

	return score - cornerPenalty(b)
}

// cornerPenalty は左下の値と最大タイルの差の二乗（左下が最大なら0）
func cornerPenalty(b Board) float64 {
	m := b.MaxTile()
	corner := b.Get(Size-1, 0)
	if corner == m {
		return 0
	}
	d := math.Abs(float64(corner - m))
	return d * d
}
