package foldseek

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeM8 = "ref_A\td1_A\t0.512\t57\t0.9100\n" +
	"ref_A\td1_B\t0.101\t12\t0.3000\n" +
	"ref_A\td2_A\t0.250\t40\t0.4500\n"

// fakeFoldseek writes a shell script that logs its arguments and, when asked
// to search, writes output to the alignment file named by its fourth
// argument. It returns the script and log paths.
func fakeFoldseek(t *testing.T, searchBody string) (string, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake foldseek is a shell script")
	}
	dir := t.TempDir()
	logPath := filepath.Join(dir, "calls.log")
	script := fmt.Sprintf(`#!/bin/sh
echo "$@" >> '%s'
case "$1" in
easy-search)
%s
  ;;
esac
`, logPath, searchBody)
	exe := filepath.Join(dir, "foldseek")
	require.NoError(t, os.WriteFile(exe, []byte(script), 0755))
	return exe, logPath
}

func writeM8(contents string) string {
	return fmt.Sprintf("  printf '%s' > \"$4\"",
		strings.ReplaceAll(strings.ReplaceAll(contents, "\t", `\t`), "\n", `\n`))
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, ents, "work directory was not removed")
}

func TestSearch(t *testing.T) {
	exe, logPath := fakeFoldseek(t, writeM8(fakeM8))
	conf := DefaultConfig
	conf.Exec = exe
	conf.TmpDir = t.TempDir()

	hits, err := conf.Search(context.Background(), "ref.pdb", "designs")
	require.NoError(t, err)
	require.Len(t, hits, 3)
	assert.Equal(t, Hit{
		Query:   "ref_A",
		Target:  "d1_A",
		Fident:  0.512,
		AlnLen:  57,
		TMScore: 0.91,
	}, hits[0])
	assert.Equal(t, "d2_A", hits[2].Target)

	calls, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(calls)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "createdb ref.pdb "))
	assert.True(t, strings.HasSuffix(lines[0], "reference_db"))
	assert.True(t, strings.HasPrefix(lines[1], "createdb designs "))
	assert.True(t, strings.HasSuffix(lines[1], "target_db"))
	assert.True(t, strings.HasPrefix(lines[2], "easy-search "))
	assert.Contains(t, lines[2], "alignment.m8")
	assert.Contains(t, lines[2],
		"--format-output query,target,fident,alnlen,alntmscore "+
			"--alignment-type 1 --prefilter-mode 0 -e 1e5 --exhaustive-search")

	assertEmptyDir(t, conf.TmpDir)
}

func TestSearchToolFailure(t *testing.T) {
	exe, _ := fakeFoldseek(t, "  echo 'Segmentation fault' >&2\n  exit 3")
	conf := Config{Exec: exe, TmpDir: t.TempDir()}

	_, err := conf.Search(context.Background(), "ref.pdb", "designs")
	require.ErrorIs(t, err, ErrToolFailure)
	assert.Contains(t, err.Error(), "Segmentation fault")
	assertEmptyDir(t, conf.TmpDir)
}

func TestSearchBadOutput(t *testing.T) {
	exe, _ := fakeFoldseek(t, writeM8("ref_A\td1_A\tnot-a-number\t57\t0.91\n"))
	conf := Config{Exec: exe, TmpDir: t.TempDir()}

	_, err := conf.Search(context.Background(), "ref.pdb", "designs")
	require.ErrorIs(t, err, ErrToolFailure)
	assert.Contains(t, err.Error(), "fident")
	assertEmptyDir(t, conf.TmpDir)
}

func TestSearchNoOutput(t *testing.T) {
	exe, _ := fakeFoldseek(t, "  true")
	conf := Config{Exec: exe, TmpDir: t.TempDir()}

	_, err := conf.Search(context.Background(), "ref.pdb", "designs")
	assert.ErrorIs(t, err, ErrToolFailure)
}

func TestSearchMissingBinary(t *testing.T) {
	conf := Config{
		Exec:   filepath.Join(t.TempDir(), "no-such-foldseek"),
		TmpDir: t.TempDir(),
	}
	_, err := conf.Search(context.Background(), "ref.pdb", "designs")
	assert.ErrorIs(t, err, ErrToolFailure)
	assertEmptyDir(t, conf.TmpDir)
}

func TestSearchCancelled(t *testing.T) {
	exe, logPath := fakeFoldseek(t, writeM8(fakeM8))
	conf := Config{Exec: exe, TmpDir: t.TempDir()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := conf.Search(ctx, "ref.pdb", "designs")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrToolFailure)
	assertEmptyDir(t, conf.TmpDir)

	_, err = os.Stat(logPath)
	assert.True(t, os.IsNotExist(err), "foldseek should never have started")
}

func TestReadHits(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "alignment.m8")
	require.NoError(t, os.WriteFile(fpath, []byte("\n"+fakeM8+"\n"), 0644))

	hits, err := ReadHits(fpath)
	require.NoError(t, err)
	assert.Len(t, hits, 3)

	require.NoError(t, os.WriteFile(fpath, []byte("a\tb\t1\n"), 0644))
	_, err = ReadHits(fpath)
	assert.ErrorIs(t, err, ErrToolFailure)
	assert.Contains(t, err.Error(), ":1:")
}

func TestBinders(t *testing.T) {
	hits := []Hit{
		{Target: "d1_A", TMScore: 0.91},
		{Target: "d1_B", TMScore: 0.30},
		{Target: "d2_A", TMScore: 0.45},
		{Target: "d3A", TMScore: 0.5},
		{Target: "d4_C", TMScore: 0.1},
	}
	assert.Equal(t, []Score{
		{Name: "d1", TMScore: 0.91},
		{Name: "d2", TMScore: 0.45},
		{Name: "d3", TMScore: 0.5},
	}, Binders(hits, BinderChain))

	assert.Equal(t, []Score{{Name: "d1", TMScore: 0.30}}, Binders(hits, "B"))
	assert.Empty(t, Binders(nil, BinderChain))
}
