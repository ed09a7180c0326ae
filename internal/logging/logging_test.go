package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/threecourse/internal/config"
)

func TestNewWithoutFileIsSilent(t *testing.T) {
	log, closer, err := New(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	require.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	log, closer, err := New(config.LogConfig{File: path, Level: "debug"})
	require.NoError(t, err)
	log.Info().Str("course", "Starter").Msg("commit")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"course":"Starter"`)
	require.Contains(t, string(data), `"message":"commit"`)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "loud"})
	require.Error(t, err)
}

func TestNewWithWriterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zerolog.WarnLevel)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}
