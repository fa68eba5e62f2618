package app

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	l := newBadgerLogger(log)

	l.Errorf("value log %d broken\n", 3)
	l.Warningf("slow sync")
	l.Infof("Running for level: %d\n", 0)
	l.Debugf("Storing value log head")

	out := buf.String()
	assert.Contains(t, out, `level=ERROR msg="value log 3 broken" component=badger`)
	assert.Contains(t, out, `level=WARN msg="slow sync" component=badger`)
	assert.NotContains(t, out, "Running for level")
	assert.NotContains(t, out, "Storing value log head")
}

func TestApp_BadgerLogsGoThroughSlog(t *testing.T) {
	cfg := testConfig()
	cfg.Snapshot.Backend = "badger"
	cfg.Badger.Path = t.TempDir()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var out bytes.Buffer
	a, err := New(context.Background(), cfg, log, Options{In: strings.NewReader(""), Out: &out, Source: secrets("GROW")})
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background()))
	require.NoError(t, a.Close(context.Background()))

	assert.Contains(t, buf.String(), "component=badger")
	assert.NotContains(t, out.String(), "badger")
}
