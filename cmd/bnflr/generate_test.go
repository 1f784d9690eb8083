package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RunGenerate_WritesGPFArtifact(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "grammar.bnf")
	outputPath := filepath.Join(dir, "out.gpf")
	assert.NoError(os.WriteFile(inputPath, []byte("<Goal> ::= <S>\n<S> ::= \"a\"\n"), 0o644))

	code := runGenerate([]string{"-o", outputPath, inputPath})
	assert.Equal(ExitSuccess, code)

	data, err := os.ReadFile(outputPath)
	assert.NoError(err)
	assert.NotEmpty(data)
}

func Test_RunGenerate_StrictFailsOnConflict(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "grammar.bnf")
	outputPath := filepath.Join(dir, "out.gpf")
	assert.NoError(os.WriteFile(inputPath, []byte("<Goal> ::= <E>\n<E> ::= <E> \"+\" <E>\n<E> ::= \"id\"\n"), 0o644))

	code := runGenerate([]string{"-o", outputPath, "--strict", inputPath})
	assert.Equal(ExitBuildError, code)
}

func Test_RunGenerate_MissingArgIsUsageError(t *testing.T) {
	assert := assert.New(t)

	code := runGenerate([]string{})
	assert.Equal(ExitUsageError, code)
}

func Test_RunGenerate_WritesSnapshotWhenRequested(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "grammar.bnf")
	outputPath := filepath.Join(dir, "out.gpf")
	snapshotPath := filepath.Join(dir, "out.snap")
	assert.NoError(os.WriteFile(inputPath, []byte("<Goal> ::= <S>\n<S> ::= \"a\"\n"), 0o644))

	code := runGenerate([]string{"-o", outputPath, "--snapshot", snapshotPath, inputPath})
	assert.Equal(ExitSuccess, code)

	data, err := os.ReadFile(snapshotPath)
	assert.NoError(err)
	assert.NotEmpty(data)
}

func Test_RunGenerate_DumpPrintsTableToStdout(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "grammar.bnf")
	outputPath := filepath.Join(dir, "out.gpf")
	assert.NoError(os.WriteFile(inputPath, []byte("<Goal> ::= <S>\n<S> ::= \"a\"\n"), 0o644))

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	assert.NoError(err)
	os.Stdout = w

	code := runGenerate([]string{"-o", outputPath, "--dump", inputPath})

	w.Close()
	os.Stdout = origStdout
	out, _ := io.ReadAll(r)

	assert.Equal(ExitSuccess, code)
	assert.Contains(string(out), "state")
}
