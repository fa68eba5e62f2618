package game

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Source yields uniform integers in [0, n).
type Source interface {
	IntN(n int) (int, error)
}

// CryptoSource reads from the operating system's CSPRNG.
type CryptoSource struct{}

func (CryptoSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("crypto source: %w", err)
	}
	return int(v.Int64()), nil
}

// SeededSource is deterministic for a given seed and safe for concurrent use.
type SeededSource struct {
	mu sync.Mutex
	r  *mrand.Rand
}

func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{r: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededSource) IntN(n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n), nil
}

// Generator produces secrets of distinct colors.
type Generator struct {
	rules Rules
	src   Source
}

func NewGenerator(rules Rules, src Source) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{rules: rules, src: src}
}

// Generate draws colors until CodeLength distinct ones are collected.
func (g *Generator) Generate() (Code, error) {
	var used [AlphabetSize]bool
	code := make(Code, 0, g.rules.CodeLength)
	for len(code) < g.rules.CodeLength {
		n, err := g.src.IntN(g.rules.NumColors)
		if err != nil {
			return nil, fmt.Errorf("generate secret: %w", err)
		}
		if used[n] {
			continue
		}
		used[n] = true
		code = append(code, Color(n))
	}
	return code, nil
}
