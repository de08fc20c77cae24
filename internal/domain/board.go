package domain

import (
	"fmt"
	"strings"
)

// Size は盤面の一辺のマス数
const Size = 4

// Direction はスワイプの方向を表す
type Direction int

const (
	Left Direction = iota
	Down
	Up
	Right
)

// Directions は合法手を列挙する順序（同点時はこの順で先に出た手を優先する）
var Directions = [4]Direction{Left, Down, Up, Right}

// String は方向の表示名を返す
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Up:
		return "Up"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// ParseDirection は "left" / "l" などの文字列から方向を得る
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, true
	case "down", "d":
		return Down, true
	case "up", "u":
		return Up, true
	case "right", "r":
		return Right, true
	default:
		return 0, false
	}
}

// Board は4x4の2048ゲーム盤面を表す（immutable）
// セルは行優先で並び、0は空、それ以外は2以上の2の累乗
type Board [Size * Size]int

// NewBoard は空のBoardを生成する
func NewBoard() Board {
	return Board{}
}

// NewBoardFromCells はセルの値を指定してBoardを生成する
func NewBoardFromCells(cells [Size][Size]int) Board {
	var b Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b[r*Size+c] = cells[r][c]
		}
	}
	return b
}

// Get は指定した位置のセル値を取得する
func (b Board) Get(row, col int) int {
	return b[row*Size+col]
}

// Set は指定した位置に値を設定した新しいBoardを返す
func (b Board) Set(row, col, value int) Board {
	b[row*Size+col] = value
	return b
}

// Row は指定した行を返す
func (b Board) Row(row int) [Size]int {
	var line [Size]int
	copy(line[:], b[row*Size:(row+1)*Size])
	return line
}

// setRow は指定した行を置き換えた新しいBoardを返す
func (b Board) setRow(row int, line [Size]int) Board {
	copy(b[row*Size:(row+1)*Size], line[:])
	return b
}

// Transpose は行と列を入れ替えた盤面を返す
func (b Board) Transpose() Board {
	var t Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			t[c*Size+r] = b[r*Size+c]
		}
	}
	return t
}

// EmptyCells は空のセルの座標一覧を返す（行優先順）
func (b Board) EmptyCells() [][2]int {
	empty := make([][2]int, 0, Size*Size)
	for i, v := range b {
		if v == 0 {
			empty = append(empty, [2]int{i / Size, i % Size})
		}
	}
	return empty
}

// CountEmpty は空きマスの数を返す
func (b Board) CountEmpty() int {
	n := 0
	for _, v := range b {
		if v == 0 {
			n++
		}
	}
	return n
}

// MaxTile は盤面上の最大タイルを返す
func (b Board) MaxTile() int {
	m := 0
	for _, v := range b {
		if v > m {
			m = v
		}
	}
	return m
}

// Sum は全タイルの合計値を返す
func (b Board) Sum() int {
	s := 0
	for _, v := range b {
		s += v
	}
	return s
}

// Equal は2つのBoardが等しいかどうかを返す
func (b Board) Equal(other Board) bool {
	return b == other
}

// Valid は全セルが0または2以上の2の累乗かどうかを返す
func (b Board) Valid() bool {
	for _, v := range b {
		if v == 0 {
			continue
		}
		if v < 2 || v&(v-1) != 0 {
			return false
		}
	}
	return true
}

// String はBoardをASCIIアートとして表示する
func (b Board) String() string {
	line := "+------+------+------+------+"
	var sb strings.Builder
	sb.WriteString(line + "\n")
	for r := 0; r < Size; r++ {
		sb.WriteString("|")
		for c := 0; c < Size; c++ {
			if v := b.Get(r, c); v == 0 {
				sb.WriteString("      |")
			} else {
				fmt.Fprintf(&sb, "%5d |", v)
			}
		}
		sb.WriteString("\n" + line + "\n")
	}
	return sb.String()
}
