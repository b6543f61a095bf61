package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redfa/regexdfa"
)

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertPrintsDOT(t *testing.T) {
	out, err := runCommand(t, NewConvertCommand(), "a|b")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph DFA")
	assert.Contains(t, out, `q0 -> q1 [label="a"];`)
}

func TestConvertWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dfa.dot")
	out, err := runCommand(t, NewConvertCommand(), "(a|b)*abb", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "DOT written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "doublecircle")
}

func TestConvertTable(t *testing.T) {
	out, err := runCommand(t, NewConvertCommand(), "--table", "a*")
	require.NoError(t, err)
	assert.Contains(t, out, "q0")
	assert.Contains(t, out, "yes")
	assert.NotContains(t, out, "digraph", "table mode suppresses DOT")
}

func TestConvertInvalidPattern(t *testing.T) {
	_, err := runCommand(t, NewConvertCommand(), "a$")
	require.Error(t, err)
	assert.ErrorIs(t, err, regexdfa.ErrUnexpectedCharacter)
}
