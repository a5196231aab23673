package menu_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/katalvlaran/tspcompare/instance"
	"github.com/katalvlaran/tspcompare/internal/menu"
	"github.com/stretchr/testify/require"
)

func newInstance(t *testing.T, n int) *instance.Instance {
	t.Helper()
	in, err := instance.New(n, instance.WithSeed(20))
	require.NoError(t, err)

	return in
}

func run(t *testing.T, inst *instance.Instance, input string, cfg menu.Config) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, menu.Run(strings.NewReader(input), &out, inst, cfg))

	return out.String()
}

func TestRun_EachAlgorithmThenExit(t *testing.T) {
	out := run(t, newInstance(t, 6), "1\n2\n3\n4\n", menu.Config{})

	require.Contains(t, out, "Nearest Neighbor Algorithm Result:")
	require.Contains(t, out, "Nearest Insertion Algorithm Result:")
	require.Contains(t, out, "Brute Force Algorithm Result:")
	require.Equal(t, 3, strings.Count(out, "Total Weight:"))
	require.True(t, strings.HasSuffix(out, "Exiting program.\n"))
	require.Equal(t, 4, strings.Count(out, "Enter your choice: "))
}

func TestRun_InvalidChoicesReprompt(t *testing.T) {
	out := run(t, newInstance(t, 4), "abc\n9\n\n0\n4\n", menu.Config{})

	require.Equal(t, 4, strings.Count(out, "Invalid choice. Please try again."))
	require.NotContains(t, out, "Total Weight:")
	require.Equal(t, 5, strings.Count(out, "Enter your choice: "))
}

func TestRun_EOFExits(t *testing.T) {
	out := run(t, newInstance(t, 4), "", menu.Config{})
	require.Contains(t, out, "Enter your choice: ")
	require.True(t, strings.HasSuffix(out, "Exiting program.\n"))

	out = run(t, newInstance(t, 4), "1\n", menu.Config{})
	require.Contains(t, out, "Nearest Neighbor Algorithm Result:")
	require.True(t, strings.HasSuffix(out, "Exiting program.\n"))
}

func TestRun_BruteForceAboveLimitDeclined(t *testing.T) {
	out := run(t, newInstance(t, 6), "3\nn\n4\n", menu.Config{BruteForceLimit: 4})

	require.Contains(t, out, "Continue? [y/N]: ")
	require.Contains(t, out, "Brute force skipped.")
	require.NotContains(t, out, "Brute Force Algorithm Result:")
}

func TestRun_BruteForceAboveLimitConfirmed(t *testing.T) {
	var logs bytes.Buffer
	cfg := menu.Config{
		BruteForceLimit: 4,
		Logger:          slog.New(slog.NewTextHandler(&logs, nil)),
	}
	out := run(t, newInstance(t, 6), "3\nYes\n4\n", cfg)

	require.Contains(t, out, "Brute Force Algorithm Result:")
	require.Contains(t, logs.String(), "brute force confirmed above limit")
	require.Contains(t, logs.String(), "exhaustive search acknowledged beyond limit")
	require.Contains(t, logs.String(), "solver finished")
}

func TestRun_BruteForceWithinLimitSkipsPrompt(t *testing.T) {
	out := run(t, newInstance(t, 5), "3\n4\n", menu.Config{BruteForceLimit: 5})
	require.NotContains(t, out, "[y/N]")
	require.Contains(t, out, "Brute Force Algorithm Result:")
}

func TestRun_EOFDuringConfirmation(t *testing.T) {
	out := run(t, newInstance(t, 6), "3\n", menu.Config{BruteForceLimit: 4})
	require.True(t, strings.HasSuffix(out, "Exiting program.\n"))
	require.NotContains(t, out, "Brute Force Algorithm Result:")
}

func TestRun_SingleVertex(t *testing.T) {
	out := run(t, newInstance(t, 1), "1\n2\n3\n4\n", menu.Config{})

	require.Contains(t, out, "Nearest Neighbor Algorithm Result:")
	require.Contains(t, out, "Nearest Insertion needs at least two vertices.")
	require.Contains(t, out, "Brute Force Algorithm Result:")
	require.Equal(t, 2, strings.Count(out, "Total Weight: 0.00"))
}

func TestRun_OverlongLineReprompts(t *testing.T) {
	input := strings.Repeat("x", 70000) + "\n1\n4\n"
	out := run(t, newInstance(t, 4), input, menu.Config{})

	require.Equal(t, 1, strings.Count(out, "Invalid choice. Please try again."))
	require.Contains(t, out, "Nearest Neighbor Algorithm Result:")
	require.True(t, strings.HasSuffix(out, "Exiting program.\n"))
}

func TestRun_LastLineWithoutNewline(t *testing.T) {
	out := run(t, newInstance(t, 4), "1\n4", menu.Config{})
	require.Contains(t, out, "Nearest Neighbor Algorithm Result:")
	require.Equal(t, 2, strings.Count(out, "Enter your choice: "))
}

type failingReader struct{}

var errRead = errors.New("tty gone")

func (failingReader) Read([]byte) (int, error) { return 0, errRead }

func TestRun_ReadErrorPropagates(t *testing.T) {
	err := menu.Run(failingReader{}, &bytes.Buffer{}, newInstance(t, 3), menu.Config{})
	require.ErrorIs(t, err, errRead)
}

type brokenWriter struct{}

var errBroken = errors.New("broken pipe")

func (brokenWriter) Write([]byte) (int, error) { return 0, errBroken }

func TestRun_WriteErrorStops(t *testing.T) {
	err := menu.Run(strings.NewReader("1\n4\n"), brokenWriter{}, newInstance(t, 3), menu.Config{})
	require.ErrorIs(t, err, errBroken)
}
