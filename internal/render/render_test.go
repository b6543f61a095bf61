package render

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redfa/regexdfa"
)

// fakeDot installs a stand-in for the graphviz binary that copies stdin to
// the file named by -o, so tests do not depend on graphviz being installed.
func fakeDot(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test shim is a shell script")
	}
	path := filepath.Join(t.TempDir(), "dot")
	script := "#!/bin/sh\nwhile [ $# -gt 1 ]; do shift; done\ncat > \"$1\"\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestRenderWritesArtifact(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images", "nested")
	r := New(dir)
	r.DotBinary = fakeDot(t)

	name, err := r.Render(context.Background(), regexdfa.MustConvert("a|b"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Contains(t, string(data), "digraph DFA")
}

func TestRenderUniqueNames(t *testing.T) {
	r := New(t.TempDir())
	r.DotBinary = fakeDot(t)

	a := regexdfa.MustConvert("a")
	first, err := r.Render(context.Background(), a)
	require.NoError(t, err)
	second, err := r.Render(context.Background(), a)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	r := New(t.TempDir())
	r.Format = "gif"

	_, err := r.Render(context.Background(), regexdfa.MustConvert("a"))
	require.ErrorContains(t, err, "unsupported format")
}

func TestRenderMissingBinary(t *testing.T) {
	r := New(t.TempDir())
	r.DotBinary = filepath.Join(t.TempDir(), "no-such-dot")

	_, err := r.Render(context.Background(), regexdfa.MustConvert("a"))
	require.ErrorContains(t, err, "dot failed")
}

func TestWriteDOT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "dfa.dot")
	r := New(t.TempDir())

	require.NoError(t, r.WriteDOT(regexdfa.MustConvert("(a|b)*abb"), path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rankdir=LR;")
}
