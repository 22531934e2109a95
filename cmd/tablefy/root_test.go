package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandGenerates(t *testing.T) {
	t.Parallel()
	output := filepath.Join(t.TempDir(), "item_tablefy.go")
	var stderr bytes.Buffer
	cmd := newRootCommand(&stderr)
	cmd.SetArgs([]string{"--type", "Item", "--output", output, filepath.Join("testdata", "sample")})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "func (Item) Headers() []string {")
	assert.Contains(t, string(data), "func (i Item) Row() []string {")
	assert.Contains(t, stderr.String(), "wrote")
}

func TestRootCommandDebugLogging(t *testing.T) {
	t.Parallel()
	output := filepath.Join(t.TempDir(), "item_tablefy.go")
	var stderr bytes.Buffer
	cmd := newRootCommand(&stderr)
	cmd.SetArgs([]string{"-t", "Item", "-o", output, "--log-level", "debug", filepath.Join("testdata", "sample")})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stderr.String(), "loading package")
	assert.Contains(t, stderr.String(), "columns=3")
}

func TestRootCommandMalformedTag(t *testing.T) {
	t.Parallel()
	output := filepath.Join(t.TempDir(), "bad_tablefy.go")
	var stderr bytes.Buffer
	cmd := newRootCommand(&stderr)
	cmd.SetArgs([]string{"--type", "Bad", "--output", output, filepath.Join("testdata", "sample")})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, errGenerateFailed)
	assert.Contains(t, err.Error(), "token 2")
	assert.Contains(t, stderr.String(), "Bad.Name")
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRootCommandRequiresType(t *testing.T) {
	t.Parallel()
	cmd := newRootCommand(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join("testdata", "sample")})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type")
}

func TestRootCommandInvalidLogLevel(t *testing.T) {
	t.Parallel()
	cmd := newRootCommand(&bytes.Buffer{})
	cmd.SetArgs([]string{"--type", "Item", "--log-level", "loud", filepath.Join("testdata", "sample")})
	assert.Error(t, cmd.Execute())
}

func TestRootCommandTooManyArgs(t *testing.T) {
	t.Parallel()
	cmd := newRootCommand(&bytes.Buffer{})
	cmd.SetArgs([]string{"--type", "Item", "a", "b"})
	assert.Error(t, cmd.Execute())
}

func TestRootCommandJSONLogs(t *testing.T) {
	t.Parallel()
	output := filepath.Join(t.TempDir(), "item_tablefy.go")
	var stderr bytes.Buffer
	cmd := newRootCommand(&stderr)
	cmd.SetArgs([]string{"-t", "Item", "-o", output, "--log-format", "json", filepath.Join("testdata", "sample")})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stderr.String(), `"msg":"wrote"`)
}

func TestRootCommandInvalidLogFormat(t *testing.T) {
	t.Parallel()
	cmd := newRootCommand(&bytes.Buffer{})
	cmd.SetArgs([]string{"--type", "Item", "--log-format", "xml", filepath.Join("testdata", "sample")})
	err := cmd.Execute()
	assert.ErrorIs(t, err, errLogFormat)
}
