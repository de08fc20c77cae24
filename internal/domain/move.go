package domain

// Action は合法手とその適用後の盤面（spawn前）の組
type Action struct {
	Dir   Direction
	Board Board
}

// Swipe は指定した方向にスワイプした盤面を返す（spawnなし）
func (b Board) Swipe(dir Direction) Board {
	moved, _ := b.SwipeWithScore(dir)
	return moved
}

// SwipeWithScore は指定した方向にスワイプした盤面と、合体で得たスコアを返す
// 上下は転置して左右の処理に帰着させる
func (b Board) SwipeWithScore(dir Direction) (Board, int) {
	switch dir {
	case Left:
		return b.swipeLeft()
	case Right:
		return b.swipeRight()
	case Up:
		moved, score := b.Transpose().swipeLeft()
		return moved.Transpose(), score
	case Down:
		moved, score := b.Transpose().swipeRight()
		return moved.Transpose(), score
	default:
		return b, 0
	}
}

func (b Board) swipeLeft() (Board, int) {
	result := b
	total := 0
	for r := 0; r < Size; r++ {
		merged, score := mergeLine(b.Row(r))
		result = result.setRow(r, merged)
		total += score
	}
	return result, total
}

func (b Board) swipeRight() (Board, int) {
	result := b
	total := 0
	for r := 0; r < Size; r++ {
		merged, score := mergeLine(reverseLine(b.Row(r)))
		result = result.setRow(r, reverseLine(merged))
		total += score
	}
	return result, total
}

// mergeLine は1行/1列を左方向にマージし、結果とスコアを返す
// 一度の走査で前から順に見るので、合体してできたタイルが同じ手の中で再び合体することはない
func mergeLine(line [Size]int) ([Size]int, int) {
	var compact [Size]int
	n := 0
	for _, v := range line {
		if v != 0 {
			compact[n] = v
			n++
		}
	}

	var result [Size]int
	score := 0
	w := 0
	for i := 0; i < n; i++ {
		if i+1 < n && compact[i] == compact[i+1] {
			result[w] = compact[i] * 2
			score += result[w]
			i++
		} else {
			result[w] = compact[i]
		}
		w++
	}
	return result, score
}

// reverseLine は配列を反転する
func reverseLine(line [Size]int) [Size]int {
	return [Size]int{line[3], line[2], line[1], line[0]}
}

// LegalActions は盤面が変化する手を Left, Down, Up, Right の順で返す
func LegalActions(b Board) []Action {
	actions := make([]Action, 0, len(Directions))
	for _, dir := range Directions {
		moved := b.Swipe(dir)
		if !moved.Equal(b) {
			actions = append(actions, Action{Dir: dir, Board: moved})
		}
	}
	return actions
}
