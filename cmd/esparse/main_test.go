package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/t14raptor/go-estree/parser"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "input.js")
	require.NoError(t, os.WriteFile(name, []byte(src), 0o644))
	return name
}

func TestRunPrintsTree(t *testing.T) {
	compact = true
	defer func() { compact = false }()

	var out bytes.Buffer
	require.NoError(t, run(writeSource(t, "a + 1;"), &out, zap.NewNop()))
	assert.Contains(t, out.String(), `{"type":"Program","sourceType":"script"`)
	assert.Contains(t, out.String(), `"operator":"+"`)
}

func TestRunWrapsParseErrors(t *testing.T) {
	name := writeSource(t, "let let = 1;")
	err := run(name, &bytes.Buffer{}, zap.NewNop())
	require.Error(t, err)

	var perr *parser.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Line)
	assert.Contains(t, err.Error(), name)
}

func TestRunMissingFile(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "missing.js"), &bytes.Buffer{}, zap.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
