package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RunTrace_MissingArgIsUsageError(t *testing.T) {
	assert := assert.New(t)

	code := runTrace([]string{})
	assert.Equal(ExitUsageError, code)
}

func Test_RunTrace_MissingConfigFileIsIOError(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	tablePath := filepath.Join(dir, "out.gpf")
	assert.NoError(os.WriteFile(tablePath, []byte("0\n0\n0\n0\n"), 0o644))

	code := runTrace([]string{"-c", filepath.Join(dir, "missing.toml"), tablePath})
	assert.Equal(ExitIOError, code)
}

func Test_RunTrace_MissingTableFileIsIOError(t *testing.T) {
	assert := assert.New(t)

	code := runTrace([]string{filepath.Join(t.TempDir(), "missing.gpf")})
	assert.Equal(ExitIOError, code)
}
