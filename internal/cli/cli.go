// Package cli はコマンド共通のロガーと乱数源の初期化
package cli

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"
)

// NewLogger はコンソール向けのロガーを返す
func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// NewRand はタイル出現用の乱数源を返す
// seed が0なら毎回異なる系列、それ以外は同じseedで同じ系列になる
func NewRand(seed uint64) *frand.RNG {
	if seed == 0 {
		return frand.New()
	}
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return frand.NewCustom(key, 1024, 12)
}
