package usecase

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nnaakkaaii/expectimax2048/internal/domain"
)

const banner = `
    ---------------------------- / 2048 \ --------------------------

                               2048 AI

    Welcome to AI 2048! Press q to quit or any other key to begin. Have fun!
`

// Menu はバナーを表示し、q が入力されるまでAIのゲームを繰り返す
// 入力が尽きた場合も終了する。プレイしたゲームの結果を返す
func Menu(r io.Reader, w io.Writer, rng domain.Rand, config AutoPlayConfig) ([]Result, error) {
	reader := bufio.NewReader(r)
	fmt.Fprint(w, banner)

	var results []Result
	for {
		fmt.Fprint(w, "\n    enter here: ")
		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			return results, nil
		}
		if strings.TrimSpace(input) == "q" {
			return results, nil
		}

		result, err := AutoPlay(w, rng, config)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
}
