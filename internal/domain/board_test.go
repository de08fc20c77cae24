package domain

import (
	"strings"
	"testing"
)

func TestMergeLine(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
	}{
		{
			name:     "empty line",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
		},
		{
			name:     "no merge needed",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
		},
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with gap",
			input:    [4]int{2, 0, 2, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "two merges",
			input:    [4]int{2, 2, 4, 4},
			expected: [4]int{4, 8, 0, 0},
			score:    12,
		},
		{
			name:     "chain does not cascade",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]int{2, 2, 4, 8},
			expected: [4]int{4, 4, 8, 0},
			score:    4,
		},
		{
			name:     "three same values",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "shift left",
			input:    [4]int{0, 0, 0, 2},
			expected: [4]int{2, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := mergeLine(tt.input)
			if result != tt.expected {
				t.Errorf("mergeLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("mergeLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSwipeRow(t *testing.T) {
	board := NewBoardFromCells([4][4]int{
		{2, 2, 4, 8},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if got := board.Swipe(Left).Row(0); got != [4]int{4, 4, 8, 0} {
		t.Errorf("left = %v, want [4 4 8 0]", got)
	}
	if got := board.Swipe(Right).Row(0); got != [4]int{0, 4, 4, 8} {
		t.Errorf("right = %v, want [0 4 4 8]", got)
	}
}

func TestSwipeUp(t *testing.T) {
	board := NewBoardFromCells([4][4]int{
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	swiped, score := board.SwipeWithScore(Up)
	if swiped.Get(0, 0) != 4 {
		t.Errorf("expected top-left to be 4, got %d", swiped.Get(0, 0))
	}
	if score != 4 {
		t.Errorf("expected score 4, got %d", score)
	}
}

func TestSwipeDown(t *testing.T) {
	board := NewBoardFromCells([4][4]int{
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	swiped := board.Swipe(Down)
	if swiped.Get(3, 0) != 4 {
		t.Errorf("expected bottom-left to be 4, got %d", swiped.Get(3, 0))
	}
	if swiped.CountEmpty() != 15 {
		t.Errorf("expected 15 empty cells, got %d", swiped.CountEmpty())
	}
}

func TestSwipeNoChange(t *testing.T) {
	board := NewBoardFromCells([4][4]int{
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{16, 0, 0, 0},
	})

	if !board.Swipe(Left).Equal(board) {
		t.Error("expected left swipe to leave the board unchanged")
	}
}

func TestBoardImmutability(t *testing.T) {
	original := NewBoardFromCells([4][4]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	originalCopy := original

	_ = original.Swipe(Left)
	_ = original.Set(3, 3, 2)
	_ = original.Transpose()

	if !original.Equal(originalCopy) {
		t.Error("original board was mutated")
	}
}

func TestEqual(t *testing.T) {
	board1 := NewBoardFromCells([4][4]int{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	board2 := NewBoardFromCells([4][4]int{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	board3 := NewBoardFromCells([4][4]int{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if !board1.Equal(board2) {
		t.Error("expected board1 and board2 to be equal")
	}

	if board1.Equal(board3) {
		t.Error("expected board1 and board3 to be different")
	}
}

func TestValid(t *testing.T) {
	if !NewBoardFromCells([4][4]int{{2, 4, 8, 0}}).Valid() {
		t.Error("expected powers of two to be valid")
	}
	if NewBoardFromCells([4][4]int{{3}}).Valid() {
		t.Error("expected 3 to be invalid")
	}
	if NewBoardFromCells([4][4]int{{1}}).Valid() {
		t.Error("expected 1 to be invalid")
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"l": Left, "Down": Down, " up ": Up, "r": Right} {
		got, ok := ParseDirection(in)
		if !ok || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseDirection("x"); ok {
		t.Error("expected x to be rejected")
	}
}

func TestString(t *testing.T) {
	board := NewBoardFromCells([4][4]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 0},
		{0, 0, 0, 2},
	})

	str := board.String()

	for _, v := range []string{"2", "4", "8", "16", "32", "64", "128", "256", "512", "1024", "2048"} {
		if !strings.Contains(str, v) {
			t.Errorf("expected string to contain %s", v)
		}
	}

	if !strings.Contains(str, "+------+") {
		t.Error("expected string to contain border")
	}

	t.Logf("Board display:\n%s", str)
}

func BenchmarkSwipe(b *testing.B) {
	board := NewBoardFromCells([4][4]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 0},
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Swipe(Left)
		board.Swipe(Right)
		board.Swipe(Up)
		board.Swipe(Down)
	}
}
