package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the CLI with the given arguments and returns everything
// written to its output stream.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// writeSource drops a Ram source file into a temp directory and returns
// its path.
func writeSource(t *testing.T, name, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "display",
			source: "display 10 + 5\n",
			want:   "15\n",
		},
		{
			name:   "loop",
			source: "loop with x from 1 to 3 {\n  display x\n}\n",
			want:   "1\n2\n3\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSource(t, "main.ram", tt.source)
			out, err := execute(t, "run", path)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestRunCommandParseError(t *testing.T) {
	path := writeSource(t, "main.ram", "frobnicate 1\n")
	_, err := execute(t, "run", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Keyword 'frobnicate' invalid.")
}

func TestRunCommandMissingFile(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "missing.ram"))
	require.Error(t, err)
}

func TestAstCommand(t *testing.T) {
	path := writeSource(t, "main.ram", "loop with x from 0 to 4 {\n  display x\n}\n")
	out, err := execute(t, "ast", path)
	require.NoError(t, err)
	require.Contains(t, out, "loop with x from 0 to 4 {")
	require.Contains(t, out, "display x")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "ram dev")
}
