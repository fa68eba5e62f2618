// Package solver plays Mastermind by keeping every code still consistent
// with the feedback seen so far and always guessing the first of them.
package solver

import (
	"example.com/mastermind/internal/game"
)

type Solver struct {
	candidates []game.Code
}

// New enumerates all codes of distinct colors the rules allow.
func New(rules game.Rules) *Solver {
	return &Solver{candidates: permutations(game.Colors(rules.NumColors), rules.CodeLength)}
}

// Remaining is the number of codes not yet ruled out.
func (s *Solver) Remaining() int { return len(s.candidates) }

// Next proposes a guess. ok is false once feedback has ruled out every
// code, which only happens if the feedback was not produced by Score.
func (s *Solver) Next() (game.Code, bool) {
	if len(s.candidates) == 0 {
		return nil, false
	}
	return s.candidates[0], true
}

// Observe drops every candidate that would not have produced f for guess.
func (s *Solver) Observe(guess game.Code, f game.Feedback) {
	kept := s.candidates[:0]
	for _, c := range s.candidates {
		if game.Score(c, guess) == f {
			kept = append(kept, c)
		}
	}
	s.candidates = kept
}

func permutations(colors []game.Color, length int) []game.Code {
	var out []game.Code
	used := make([]bool, len(colors))
	cur := make(game.Code, 0, length)

	var rec func()
	rec = func() {
		if len(cur) == length {
			out = append(out, append(game.Code(nil), cur...))
			return
		}
		for i, c := range colors {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, c)
			rec()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	rec()
	return out
}
