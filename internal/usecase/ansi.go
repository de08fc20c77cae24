package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nnaakkaaii/expectimax2048/internal/domain"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	ansiReset   = "\x1b[0m"
)

// ColorBoard は RenderBoard の色をANSIのtruecolorエスケープで描いた4行を返す
func ColorBoard(b domain.Board) string {
	cells := domain.RenderBoard(b)
	var sb strings.Builder
	for i, c := range cells {
		fmt.Fprintf(&sb, "\x1b[38;2;%sm\x1b[48;2;%sm%s%s", rgb(c.Foreground), rgb(c.Background), c.Text, ansiReset)
		if i%domain.Size == domain.Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// rgb は "#rrggbb" を "r;g;b" に変換する
func rgb(hex string) string {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return "255;255;255"
	}
	return fmt.Sprintf("%d;%d;%d", v>>16&0xff, v>>8&0xff, v&0xff)
}
