// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphz/dijkstra"
)

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

var scenarioEdges = []string{"--edge", "1:2:2", "--edge", "2:3:3", "--edge", "1:3:10", "--edge", "3:4:1"}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "graphz", cmd.Use)
	assert.Contains(t, cmd.Long, "least-cost")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, cmdName := range []string{"show", "path", "matrix"} {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	for _, name := range []string{"config", "env-file", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestShow_Text(t *testing.T) {
	out, _, err := execute(t, "show", "--log-level", "none", "--vertex", "1=a", "--edge", "1:2:2")
	require.NoError(t, err)
	assert.Contains(t, out, "ID  VALUE  NEIGHBORS\n1   a      2(2)\n")
	assert.Contains(t, out, "A  B  COST\n1  2  2\n")
	assert.Contains(t, out, "2 vertices, 1 edges, total cost 2, 0 isolated")
}

func TestShow_Table(t *testing.T) {
	out, _, err := execute(t, "show", "--log-level", "none", "--edge", "a:b:1", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Neighbors")
	assert.Contains(t, out, "b(1)")
}

func TestShow_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"--format", "json"}},
		{"bad edge", []string{"--edge", "1:2"}},
		{"bad cost", []string{"--edge", "1:2:x"}},
		{"negative cost", []string{"--edge", "1:2:-1"}},
		{"self loop", []string{"--edge", "1:1:1"}},
		{"duplicate vertex", []string{"--vertex", "1=a", "--vertex", "1=b"}},
		{"empty id", []string{"--vertex", "=a"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"show", "--log-level", "none"}, tc.args...)
			_, _, err := execute(t, args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestPath_Scenario(t *testing.T) {
	args := append([]string{"path", "--log-level", "none", "--from", "1", "--to", "4"}, scenarioEdges...)
	out, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, "1 -> 2 -> 3 -> 4 (cost 6)\n  4 <- 3\n  3 <- 2\n  2 <- 1\n", out)
}

func TestPath_ExitCodes(t *testing.T) {
	base := []string{"path", "--log-level", "none", "--edge", "1:2:1", "--vertex", "3=island"}

	_, _, err := execute(t, append(base, "--from", "1", "--to", "3")...)
	require.Error(t, err)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, _, err = execute(t, append(base, "--from", "1", "--to", "9")...)
	require.Error(t, err)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, append(base, "--from", "1", "--to", "2", "--max-iterations", "1")...)
	require.Error(t, err)
	assert.ErrorIs(t, err, dijkstra.ErrComputationLimit)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, _, err = execute(t, "path", "--log-level", "none", "--edge", "1:2:1e308", "--edge", "2:3:1e308", "--from", "1", "--to", "3")
	require.Error(t, err)
	assert.ErrorIs(t, err, dijkstra.ErrCostOverflow)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestPath_MaxIterationsFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  max_iterations: 2\n"), 0o600))

	args := append([]string{"path", "--config", path, "--log-level", "none", "--from", "1", "--to", "4"}, scenarioEdges...)
	_, _, err := execute(t, args...)
	assert.ErrorIs(t, err, dijkstra.ErrComputationLimit)

	// An explicit flag wins over the file.
	args = append(args, "--max-iterations", "0")
	_, _, err = execute(t, args...)
	assert.NoError(t, err)
}

func TestVerboseLogsMutations(t *testing.T) {
	_, stderr, err := execute(t, "show", "--verbose", "--log-level", "info", "--edge", "1:2:2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "core: edge 1-2 added (cost 2)")

	_, stderr, err = execute(t, "show", "--log-level", "info", "--edge", "1:2:2")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "added")
}

func TestBadConfig(t *testing.T) {
	_, _, err := execute(t, "show", "--log-level", "shout")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, "show", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestMatrix(t *testing.T) {
	out, _, err := execute(t, "matrix", "--log-level", "none", "--edge", "a:b:2", "--edge", "b:c:3", "--vertex", "d")
	require.NoError(t, err)
	// Declared vertices come first: d, then a, b, c as the edges introduce them.
	assert.Contains(t, out, "d  0    inf  inf  inf\n")
	assert.Contains(t, out, "a  inf  0    2    5\n")

	_, _, err = execute(t, "matrix", "--log-level", "none")
	assert.Equal(t, ExitCommandError, GetExitCode(err), "empty graph has no matrix")
}
