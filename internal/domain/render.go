package domain

import (
	"fmt"
	"strconv"
)

// TileColors はタイルの値ごとの背景色
var TileColors = map[int]string{
	0:    "#ffffff",
	2:    "#dcd1c8",
	4:    "#d8cbb6",
	8:    "#e4a878",
	16:   "#d9804f",
	32:   "#e3755b",
	64:   "#d75337",
	128:  "#d9c062",
	256:  "#d9ba59",
	512:  "#d9b74a",
	1024: "#d0a916",
	2048: "#d9b32e",
	4096: "#e63837",
}

const (
	foregroundDark  = "#000000"
	foregroundLight = "#ffffff"

	// maxColoredTile より大きいタイルはこの色を使う
	maxColoredTile = 4096

	cellWidth = 6
)

// Cell は表示用の1マス
type Cell struct {
	Value      int
	Text       string
	Foreground string
	Background string
}

// RenderBoard は盤面を行優先の16マスの表示セルに変換する
// 8未満は黒文字、それ以外は白文字
func RenderBoard(b Board) [Size * Size]Cell {
	var cells [Size * Size]Cell
	for i, v := range b {
		fg := foregroundLight
		if v < 8 {
			fg = foregroundDark
		}
		cells[i] = Cell{
			Value:      v,
			Text:       center(strconv.Itoa(v), cellWidth),
			Foreground: fg,
			Background: tileColor(v),
		}
	}
	return cells
}

func tileColor(v int) string {
	if c, ok := TileColors[v]; ok {
		return c
	}
	return TileColors[maxColoredTile]
}

// center は文字列を幅widthの中央に寄せる（余りは右側）
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return fmt.Sprintf("%*s%s%*s", left, "", s, pad-left, "")
}
