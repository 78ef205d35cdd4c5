package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	logger, err := newLogger(&out, "WARN")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")

	logger, err = newLogger(&out, "")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	_, err = newLogger(&out, "loud")
	assert.Error(t, err)
}

func TestConsoleCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, errOut bytes.Buffer
	root := newRootCommand()
	root.SetArgs([]string{"console", "--log-level", "error", "--no-chime"})
	root.SetIn(strings.NewReader("s\nr\nq\n"))
	root.SetOut(&out)
	root.SetErr(&errOut)

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Focus Time 25:00 (paused)")
	assert.Empty(t, errOut.String())
}

func TestRejectsBadLogLevel(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"console", "--log-level", "chatty"})
	root.SetIn(strings.NewReader(""))
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	assert.Error(t, root.Execute())
}
