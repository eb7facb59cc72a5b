package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestNew_NoSinks(t *testing.T) {
	_, err := New(&Config{})
	assert.Error(t, err)
}

func TestNew_Console(t *testing.T) {
	lg, err := New(&Config{Level: "warn", Console: true})
	require.NoError(t, err)
	require.NotNil(t, lg)
	lg.Warn("warning goes to stderr")
	_ = lg.Sync() // stderr sync is platform-dependent
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stringdist.log")
	lg, err := New(&Config{Level: "debug", File: path})
	require.NoError(t, err)
	lg.Info("hello")
	require.NoError(t, lg.Sync())
}

func TestParseLevel_Unknown(t *testing.T) {
	_, err := New(&Config{Level: "loud", Console: true})
	assert.Error(t, err)
}
