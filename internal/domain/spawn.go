package domain

import (
	"errors"
	"fmt"
)

// スポーン確率（2が90%、4が10%）
const (
	spawn2Prob = 0.9
	spawn4Prob = 0.1
)

// ErrNotEnoughEmptyCells は要求された数の空きマスがない場合に返される
var ErrNotEnoughEmptyCells = errors.New("not enough empty cells to spawn")

// Rand はタイル出現に使う乱数源
// *math/rand.Rand と *frand.RNG のどちらも満たす
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Spawn は空きマスからk個を重複なくランダムに選び、2(90%)か4(10%)を置いた新しいBoardを返す
// 全座標をシャッフルし、先頭から空きマスをk個拾う
func Spawn(b Board, k int, rng Rand) (Board, error) {
	if empty := b.CountEmpty(); empty < k {
		return b, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughEmptyCells, k, empty)
	}

	var order [Size * Size]int
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	placed := 0
	for _, idx := range order {
		if placed == k {
			break
		}
		if b[idx] != 0 {
			continue
		}
		b[idx] = spawnValue(rng)
		placed++
	}
	return b, nil
}

// spawnValue は10回に1回4を、それ以外は2を返す
func spawnValue(rng Rand) int {
	if rng.Intn(10) == 0 {
		return 4
	}
	return 2
}

// InitialBoard は空の盤面に2枚のタイルを置いたゲーム開始時の盤面を返す
func InitialBoard(rng Rand) Board {
	b, err := Spawn(NewBoard(), 2, rng)
	if err != nil {
		// 空の盤面には16マスあるので起こらない
		panic(err)
	}
	return b
}
