package domain

// IsOver は合法手が一つもない（ゲームオーバー）かどうかを返す
// 空きマスがあれば必ずスライドでき、隣接する同じ値があれば必ず合体できるので、
// 行方向と列方向（転置）の両方でそのどちらも無いときに限り終局となる
func IsOver(b Board) bool {
	return !hasOpenPair(b) && !hasOpenPair(b.Transpose())
}

// hasOpenPair は横に隣り合う2マスのうち、同じ値か空を含む組があるかを返す
func hasOpenPair(b Board) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size-1; c++ {
			x, y := b.Get(r, c), b.Get(r, c+1)
			if x == y || x == 0 || y == 0 {
				return true
			}
		}
	}
	return false
}
