package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lychanl/SumColouring/builder"
	"github.com/lychanl/SumColouring/graphio"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp(strings.NewReader(stdin), &out, &errOut)
	err = app.Run(append([]string{"sumcolour"}, args...))
	return out.String(), errOut.String(), err
}

func TestSolve_Stdin(t *testing.T) {
	stdout, stderr, err := run(t, "3 3\n1 2\n2 3\n1 3\n", "solve", "--algorithm", "lp")
	require.NoError(t, err)
	require.Equal(t, "1 3\n2 1\n3 2\n", stdout)
	require.Equal(t, "3 6\n", stderr)
}

func TestSolve_Files(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "star.txt")
	out := filepath.Join(dir, "star.col")
	require.NoError(t, os.WriteFile(in, []byte("4 3\n1 2\n1 3\n1 4\n"), 0o644))

	for _, algo := range []string{"lp", "bruteforce", "greedy", "maxsat", "pbmaxsat"} {
		t.Run(algo, func(t *testing.T) {
			_, stderr, err := run(t, "", "solve", "-a", algo, "-i", in, "-o", out, "--split-components")
			require.NoError(t, err)
			require.Equal(t, "2 5\n", stderr)

			f, err := os.Open(out)
			require.NoError(t, err)
			defer f.Close()
			colouring, err := graphio.ReadColouring(f)
			require.NoError(t, err)
			require.Equal(t, []int{2, 1, 1, 1}, colouring)
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "2 1\n1 2\n", "solve", "--algorithm", "simplex")
	require.Error(t, err)

	_, _, err = run(t, "2 1\n1 1\n", "solve")
	require.Error(t, err)

	_, _, err = run(t, "3 3\n1 2\n2 3\n1 3\n", "solve", "--max-cuts", "0")
	require.Error(t, err)

	_, _, err = run(t, "2 1\n1 2\n", "solve", "--max-pivots", "0")
	require.Error(t, err)
}

func TestSolve_OutputWriteFails(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full")
	}
	require.Error(t, writeColouring(nil, "/dev/full", []int{1, 2}))

	_, _, err := run(t, "2 1\n1 2\n", "solve", "-o", "/dev/full")
	require.Error(t, err)

	_, _, err = run(t, "2 1\n1 2\n", "solve", "-o", filepath.Join(t.TempDir(), "missing", "out.col"))
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeColouring(&buf, "", []int{1, 2}))
	require.Equal(t, "1 1\n2 2\n", buf.String())
}

func TestSolve_EnvVars(t *testing.T) {
	t.Setenv("SUMCOLOUR_ALGORITHM", "greedy")
	stdout, _, err := run(t, "2 1\n1 2\n", "solve")
	require.NoError(t, err)
	require.Equal(t, "1 1\n2 2\n", stdout)
}

func TestGenerate(t *testing.T) {
	stdout, _, err := run(t, "", "generate", "C", "4")
	require.NoError(t, err)
	require.Equal(t, "4 4\n1 2\n1 4\n2 3\n3 4\n", stdout)

	stdout, _, err = run(t, "", "generate", "bk", "1", "2")
	require.NoError(t, err)
	require.Equal(t, "3 2\n1 2\n1 3\n", stdout)

	a, _, err := run(t, "", "generate", "--seed", "7", "R", "6", "5")
	require.NoError(t, err)
	b, _, err := run(t, "", "generate", "--seed", "7", "R", "6", "5")
	require.NoError(t, err)
	require.Equal(t, a, b)

	g, err := graphio.ReadGraph(strings.NewReader(a))
	require.NoError(t, err)
	require.Equal(t, 5, g.EdgeCount())
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "", "generate", "X", "3")
	require.ErrorIs(t, err, builder.ErrUnknownKind)

	_, _, err = run(t, "", "generate", "BK", "3")
	require.Error(t, err)

	_, _, err = run(t, "", "generate", "K", "three")
	require.Error(t, err)

	_, _, err = run(t, "", "generate", "K", "0")
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	tri := filepath.Join(dir, "triangle.txt")
	path := filepath.Join(dir, "p13.txt")
	require.NoError(t, os.WriteFile(tri, []byte("3 3\n1 2\n2 3\n1 3\n"), 0o644))

	var buf bytes.Buffer
	g, err := builder.BuildGraph(nil, builder.Path(13))
	require.NoError(t, err)
	require.NoError(t, graphio.WriteGraph(&buf, g))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	stdout, _, err := run(t, "", "compare", "--algorithms", "greedy,bruteforce", tri, path)
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "name\tgreedy.result\tgreedy.maxc\tgreedy.time\tbruteforce.result\tbruteforce.maxc\tbruteforce.time\tn\tm\tmax.deg", lines[0])

	triangle := strings.Split(lines[1], "\t")
	require.Equal(t, []string{"triangle", "6", "3"}, triangle[:3])
	require.Equal(t, []string{"6", "3"}, triangle[4:6])
	require.Equal(t, []string{"3", "3", "2"}, triangle[7:])

	p13 := strings.Split(lines[2], "\t")
	require.Equal(t, []string{"p13", "19", "2"}, p13[:3])
	require.Equal(t, []string{"ERR", "ERR", "ERR"}, p13[4:7])
	require.Equal(t, []string{"13", "12", "2"}, p13[7:])
}
