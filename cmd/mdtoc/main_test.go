package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usageText = "Usage is:\nmdtoc <input-file> <output-file>\n"

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_WrongArgumentCount(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"only-one.md"},
		{"a.md", "b.md", "c.md"},
	} {
		code, stdout, stderr := runCLI(args...)
		assert.Equal(t, 1, code, "args %v", args)
		assert.Equal(t, usageText, stdout, "args %v", args)
		assert.Empty(t, stderr, "args %v", args)
	}
}

func TestRun_UnknownFlagIsUsageError(t *testing.T) {
	code, stdout, _ := runCLI("--bogus", "a.md", "b.md")
	assert.Equal(t, 1, code)
	assert.Equal(t, usageText, stdout)
}

func TestRun_Success(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.md")
	out := filepath.Join(dir, "out.md")
	require.NoError(t, os.WriteFile(in, []byte("INSERT-TOC-HERE\n# Title One\nbody\n"), 0o644))

	code, stdout, stderr := runCLI(in, out)
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "- [Title One](#a0)\n\n# <a name=\"a0\"></a>Title One\nbody", string(got))
}

func TestRun_CustomMarkerFirstOccurrence(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.md")
	out := filepath.Join(dir, "out.md")
	require.NoError(t, os.WriteFile(in, []byte("<!-- toc -->\n## Usage\n<!-- toc -->"), 0o644))

	code, _, stderr := runCLI("--marker", "<!-- toc -->", "--first-marker", in, out)
	require.Equal(t, 0, code, stderr)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "  * [Usage](#a0)\n\n## <a name=\"a0\"></a>Usage\n<!-- toc -->", string(got))
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "missing.md")

	code, stdout, stderr := runCLI(in, filepath.Join(dir, "out.md"))
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "ERROR: can not open file <"+in+"> - "), stderr)
	assert.Equal(t, 1, strings.Count(stderr, "\n"))
}

func TestRun_EmptyMarker(t *testing.T) {
	dir := t.TempDir()
	code, stdout, stderr := runCLI("--marker", "", filepath.Join(dir, "a.md"), filepath.Join(dir, "b.md"))
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "marker must not be empty")
}
