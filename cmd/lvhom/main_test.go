package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const triangle = `0 0 0
0 0 1
0 0 2
1 1 0 1
1 1 0 2
1 1 1 2
2 2 0 1 2
`

// run executes a fresh command tree and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func TestCompute_PositionalArgs(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "tri.txt", triangle)
	out := filepath.Join(dir, "res", "intervals.txt")
	logPrefix := filepath.Join(dir, "logs") + string(filepath.Separator)

	_, err := run(t, "compute", in, out, logPrefix)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.ElementsMatch(t, []string{"0 0 inf", "0 0 1", "0 0 1", "1 1 2"}, lines)

	logData, err := os.ReadFile(logPrefix + "lvhom.log")
	require.NoError(t, err)
	assert.Contains(t, string(logData), "intervals saved")
}

func TestCompute_YAMLFormatFlag(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "tri.txt", triangle)
	out := filepath.Join(dir, "intervals.yaml")

	_, err := run(t, "compute", in, "--output", out, "--log", "", "--format", "yaml")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dim: 1")
	assert.Contains(t, string(data), ".inf")
}

func TestCompute_FacePolicy(t *testing.T) {
	dir := t.TempDir()
	// Edge {0,2} refers to vertex 2, which never enters.
	in := writeFile(t, dir, "open.txt", "0 0 0\n0 0 1\n1 1 0 2\n")
	out := filepath.Join(dir, "intervals.txt")

	_, err := run(t, "compute", in, out, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")

	_, err = run(t, "compute", in, out, "", "--faces", "lenient")
	require.NoError(t, err)
	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestCompute_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "tri.txt", triangle)
	out := filepath.Join(dir, "from-config.txt")
	cfg := writeFile(t, dir, "lvhom.yaml", "output: "+out+"\nlog: \"\"\nformat: text\n")

	_, err := run(t, "compute", in, "--config", cfg)
	require.NoError(t, err)
	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestCompute_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "compute")
	assert.Error(t, err, "missing filtration argument")

	_, err = run(t, "compute", filepath.Join(dir, "absent.txt"), filepath.Join(dir, "o.txt"), "")
	assert.Error(t, err)

	in := writeFile(t, dir, "tri.txt", triangle)
	_, err = run(t, "compute", in, "--faces", "sloppy", "--log", "")
	assert.Error(t, err)
}

func TestGenerate_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	gen := filepath.Join(dir, "sphere.txt")

	_, err := run(t, "generate", "sphere", "1", "--out", gen)
	require.NoError(t, err)

	out := filepath.Join(dir, "intervals.txt")
	_, err = run(t, "compute", gen, out, "")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	// The boundary of a triangle is a circle: one component, one loop.
	var infinite []string
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if strings.HasSuffix(line, " inf") {
			infinite = append(infinite, line)
		}
	}
	assert.ElementsMatch(t, []string{"0 1 inf", "1 2 inf"}, infinite)
}

func TestGenerate_Stdout(t *testing.T) {
	stdout, err := run(t, "generate", "cycle", "3", "--offset", "1")
	require.NoError(t, err)
	assert.Equal(t, "0 0 1\n0 0 2\n0 0 3\n1 1 1 2\n1 1 1 3\n1 1 2 3\n", stdout)

	_, err = run(t, "generate", "torus", "3")
	assert.Error(t, err)
	_, err = run(t, "generate", "cycle", "x")
	assert.Error(t, err)
	_, err = run(t, "generate", "cycle", "2")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lvhom "+version+"\n", stdout)
}

func TestGenerate_TimeFlag(t *testing.T) {
	stdout, err := run(t, "generate", "random", "3", "--p", "1", "--max-dim", "1", "--time", "const:0.5")
	require.NoError(t, err)
	assert.Equal(t, "0 0 0\n0 0 1\n0 0 2\n0.5 1 0 1\n0.5 1 0 2\n0.5 1 1 2\n", stdout)

	for _, spec := range []string{"exp:2", "normal:1,0.25", "uniform:1,3", "uniform"} {
		_, err := run(t, "generate", "random", "5", "--time", spec)
		assert.NoError(t, err, spec)
	}
	for _, spec := range []string{"exp:0", "normal:1", "uniform:3,1", "const:-1", "gamma:1", "exp:x"} {
		_, err := run(t, "generate", "random", "5", "--time", spec)
		assert.Error(t, err, spec)
	}
}

func TestGenerate_OutFileErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "generate", "cycle", "3", "--out", filepath.Join(dir, "missing", "c.txt"))
	assert.Error(t, err)

	out := filepath.Join(dir, "c.txt")
	_, err = run(t, "generate", "cycle", "3", "--out", out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(string(data), "\n"))
}
