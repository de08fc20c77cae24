package domain

import (
	"math/bits"
)

// BitBoard は2048の盤面を64ビット整数で表現
// 各タイルは4ビットで表現（0-15の指数: 0=空, 1=2, 2=4, 3=8, ..., 15=32768）
// 16個のタイル × 4ビット = 64ビット
// 探索のメモ化キーとして使う
type BitBoard uint64

// maxPackedExp は4ビットで表せる最大の指数
const maxPackedExp = 15

// NewBitBoard は通常のBoardからBitBoardを生成する
// 32768を超えるタイルや2の累乗でない値がある場合はfalseを返す
func NewBitBoard(b Board) (BitBoard, bool) {
	var bb BitBoard
	for i, v := range b {
		if v == 0 {
			continue
		}
		if v&(v-1) != 0 {
			return 0, false
		}
		// 2の何乗かを計算（2→1, 4→2, 8→3, ...）
		exp := bits.TrailingZeros(uint(v))
		if exp == 0 || exp > maxPackedExp {
			return 0, false
		}
		bb |= BitBoard(exp) << (i * 4)
	}
	return bb, true
}
