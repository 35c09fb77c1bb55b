package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildCrawlBinary compiles the CLI into a fresh temporary directory and
// returns the path to it. Each test that calls it builds its own copy.
func buildCrawlBinary(t *testing.T) string {
	t.Helper()

	binDir := t.TempDir()
	binaryPath := filepath.Join(binDir, "crawl_test_bin")

	build := exec.Command("go", "build", "-o", binaryPath, ".")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	require.NoError(t, build.Run(), "build crawl binary")

	return binaryPath
}

func writeFixtureTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	mustWrite := func(rel, content string) {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	mustWrite("a.txt", "data")
	mustWrite(filepath.Join("sub", "b.txt"), "more")
	mustWrite(filepath.Join("sub", "deeper", "c.txt"), "deepest")

	return root
}

// TestCLIListsEveryEntryAcrossStrategies runs the binary under each
// strategy and checks the three fixtures are all reported, regardless of
// which crawl strategy produced the stream.
func TestCLIListsEveryEntryAcrossStrategies(t *testing.T) {
	binaryPath := buildCrawlBinary(t)
	root := writeFixtureTree(t)

	want := []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "b.txt"),
		filepath.Join(root, "sub", "deeper", "c.txt"),
	}
	sort.Strings(want)

	for _, tc := range []struct {
		strategy string
		workers  string
	}{
		{"single", "1"},
		{"pool", "4"},
		{"recursive", "1"},
	} {
		t.Run(tc.strategy, func(t *testing.T) {
			cmd := exec.Command(binaryPath, "--strategy", tc.strategy, "--workers", tc.workers, root)
			out, err := cmd.Output()
			require.NoError(t, err)

			got := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
			sort.Strings(got)
			require.Equal(t, want, got)
		})
	}
}

// TestCLIStatsFlagPrintsSummary checks that --stats appends a run summary
// table after the path stream, without corrupting the stream itself.
func TestCLIStatsFlagPrintsSummary(t *testing.T) {
	binaryPath := buildCrawlBinary(t)
	root := writeFixtureTree(t)

	cmd := exec.Command(binaryPath, "--strategy", "pool", "--workers", "2", "--stats", root)
	out, err := cmd.Output()
	require.NoError(t, err)

	require.Contains(t, string(out), "a.txt")
	require.Contains(t, string(out), "Run ID")
	require.Contains(t, string(out), "pool")
}

// TestCLIRejectsUnknownStrategy checks flag validation surfaces as a
// nonzero exit rather than a panic or a silent fallback.
func TestCLIRejectsUnknownStrategy(t *testing.T) {
	binaryPath := buildCrawlBinary(t)
	root := writeFixtureTree(t)

	cmd := exec.Command(binaryPath, "--strategy", "bogus", root)
	err := cmd.Run()
	require.Error(t, err)
}

// TestCLIRequiresRootArgument checks the CLI fails fast without a path.
func TestCLIRequiresRootArgument(t *testing.T) {
	binaryPath := buildCrawlBinary(t)

	cmd := exec.Command(binaryPath)
	err := cmd.Run()
	require.Error(t, err)
}
