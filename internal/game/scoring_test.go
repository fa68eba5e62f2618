package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allSecrets(t *testing.T) []Code {
	t.Helper()
	var out []Code
	var rec func(prefix Code, used [AlphabetSize]bool)
	rec = func(prefix Code, used [AlphabetSize]bool) {
		if len(prefix) == DefaultCodeLength {
			out = append(out, append(Code(nil), prefix...))
			return
		}
		for c := 0; c < DefaultNumColors; c++ {
			if used[c] {
				continue
			}
			used[c] = true
			rec(append(prefix, Color(c)), used)
			used[c] = false
		}
	}
	rec(nil, [AlphabetSize]bool{})
	require.Len(t, out, 360)
	return out
}

func allGuesses() []Code {
	var out []Code
	for a := 0; a < DefaultNumColors; a++ {
		for b := 0; b < DefaultNumColors; b++ {
			for c := 0; c < DefaultNumColors; c++ {
				for d := 0; d < DefaultNumColors; d++ {
					out = append(out, Code{Color(a), Color(b), Color(c), Color(d)})
				}
			}
		}
	}
	return out
}

func TestScore_Examples(t *testing.T) {
	cases := []struct {
		secret, guess string
		want          Feedback
	}{
		{"GROW", "BOGW", Feedback{Exact: 1, Misplaced: 2}},
		{"GBRY", "BBBB", Feedback{Exact: 1, Misplaced: 0}},
		{"GRBY", "BBBB", Feedback{Exact: 1, Misplaced: 0}},
		{"BGRY", "GBGG", Feedback{Exact: 0, Misplaced: 2}},
		{"OWYR", "RRWW", Feedback{Exact: 0, Misplaced: 2}},
		{"GBRY", "GGGG", Feedback{Exact: 1, Misplaced: 0}},
		{"GBRY", "YRBG", Feedback{Exact: 0, Misplaced: 4}},
		{"GBRY", "WOWO", Feedback{Exact: 0, Misplaced: 0}},
		{"OWYR", "BBBB", Feedback{Exact: 0, Misplaced: 0}},
		{"OWYR", "BRYW", Feedback{Exact: 1, Misplaced: 2}},
		{"OWYR", "BRYO", Feedback{Exact: 1, Misplaced: 2}},
		{"OWYR", "WYRB", Feedback{Exact: 0, Misplaced: 3}},
		{"OWYR", "OYRB", Feedback{Exact: 1, Misplaced: 2}},
		{"OWYR", "OWYB", Feedback{Exact: 3, Misplaced: 0}},
		{"OWYR", "OWYR", Feedback{Exact: 4, Misplaced: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.secret+"/"+tc.guess, func(t *testing.T) {
			got := Score(mustCode(t, tc.secret), mustCode(t, tc.guess))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	guesses := allGuesses()
	for _, secret := range allSecrets(t) {
		for _, g := range guesses {
			f := Score(secret, g)
			if f.Exact < 0 || f.Misplaced < 0 || f.Exact+f.Misplaced > DefaultCodeLength {
				t.Fatalf("Score(%s,%s)=%+v out of bounds", secret, g, f)
			}
		}
	}
}

func TestScore_PerfectGuess(t *testing.T) {
	for _, secret := range allSecrets(t) {
		require.Equal(t, Feedback{Exact: 4}, Score(secret, secret), "secret %s", secret)
	}
}

func TestScore_DisjointColors(t *testing.T) {
	for _, secret := range allSecrets(t) {
		var in [AlphabetSize]bool
		for _, c := range secret {
			in[c] = true
		}
		for _, g := range allGuesses() {
			disjoint := true
			for _, c := range g {
				if in[c] {
					disjoint = false
					break
				}
			}
			if !disjoint {
				continue
			}
			require.Equal(t, Feedback{}, Score(secret, g), "secret %s guess %s", secret, g)
		}
	}
}

func TestScore_RepeatedGuessColorCountsOnce(t *testing.T) {
	for _, secret := range allSecrets(t) {
		for c := 0; c < DefaultNumColors; c++ {
			g := Code{Color(c), Color(c), Color(c), Color(c)}
			want := Feedback{}
			for _, s := range secret {
				if s == Color(c) {
					// a solid guess always covers the color's own slot
					want = Feedback{Exact: 1}
				}
			}
			require.Equal(t, want, Score(secret, g), "secret %s guess %s", secret, g)
		}
	}
}

func TestScore_MalformedGuessDoesNotPanic(t *testing.T) {
	secret := mustCode(t, "GBRY")
	guess := Code{Color(200), Blue, Color(7), Green}
	assert.Equal(t, Feedback{Exact: 1, Misplaced: 1}, Score(secret, guess))
	assert.Equal(t, Feedback{}, Score(secret, Code{Red}[:0]))
}
