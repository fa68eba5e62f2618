package game

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustCode(t *testing.T, s string) Code {
	t.Helper()
	c, err := ParseCode(s, len(s))
	require.NoError(t, err)
	return c
}

// scriptedSource replays fixed draws, then fails.
type scriptedSource struct {
	draws []int
	calls int
}

func (s *scriptedSource) IntN(n int) (int, error) {
	if s.calls >= len(s.draws) {
		return 0, errors.New("script exhausted")
	}
	v := s.draws[s.calls]
	s.calls++
	return v % n, nil
}

// secretSource makes the generator produce exactly the given code.
func secretSource(t *testing.T, s string) *scriptedSource {
	t.Helper()
	src := &scriptedSource{}
	for _, c := range mustCode(t, s) {
		src.draws = append(src.draws, int(c))
	}
	return src
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
