package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/library/internal/library"
	"github.com/idilsaglam/library/internal/store/jsonstore"
)

type result struct {
	code           int
	stdout, stderr string
}

// run executes the CLI against a private data directory with colors off.
func run(t *testing.T, dir string, args ...string) result {
	t.Helper()
	var out, errb bytes.Buffer
	base := []string{"--config", filepath.Join(dir, "config.yaml"), "--dir", dir, "--no-color"}
	code := Run(append(args, base...), &out, &errb)
	return result{code: code, stdout: out.String(), stderr: errb.String()}
}

func snapshot(t *testing.T, dir string) string {
	t.Helper()
	s, err := jsonstore.New(dir)
	require.NoError(t, err)
	v, ok, err := s.Get(library.SnapshotKey)
	require.NoError(t, err)
	require.True(t, ok)
	return v
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "library", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"ls", "add", "read", "rm", "reset"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"config", "backend", "dir", "theme", "no-color", "verbose", "log-file"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", cmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestList_SeedsFirstRun(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "ls")

	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "The Hobbit by J.R.R. Tolkien (304 pages)")
	assert.Contains(t, r.stdout, " 4. ")
	assert.Contains(t, snapshot(t, dir), `"title":"Blood Meridian"`)
}

func TestList_Grouped(t *testing.T) {
	dir := t.TempDir()
	require.Equal(t, ExitOK, run(t, dir, "read", "3").code)

	r := run(t, dir, "ls", "--group")

	require.Equal(t, ExitOK, r.code)
	assert.Contains(t, r.stdout, "Not read")
	assert.Contains(t, r.stdout, " 3. ")
	assert.Less(t, strings.Index(r.stdout, "No Country"), strings.Index(r.stdout, "The Hobbit"))
}

func TestAdd_Persists(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "add", "Dune", "--author", "Frank Herbert", "--pages", "412", "--read")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, `added "Dune" as #5`)

	assert.Contains(t, snapshot(t, dir), `{"title":"Dune","author":"Frank Herbert","pages":412,"isRead":true}`)
	assert.Contains(t, run(t, dir, "ls").stdout, "Dune by Frank Herbert")
}

func TestAdd_MultiWordTitle(t *testing.T) {
	dir := t.TempDir()

	require.Equal(t, ExitOK, run(t, dir, "add", "The", "Name", "of", "the", "Rose").code)
	assert.Contains(t, snapshot(t, dir), `"title":"The Name of the Rose"`)
}

func TestAdd_Usage(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, ExitUsage, run(t, dir, "add").code)
	assert.Equal(t, ExitUsage, run(t, dir, "add", "  ").code)
}

func TestRead_Toggles(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "read", "1")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, `"The Hobbit" marked not read`)
	assert.Contains(t, snapshot(t, dir), `{"title":"The Hobbit","author":"J.R.R. Tolkien","pages":304,"isRead":false}`)

	r = run(t, dir, "read", "1")
	require.Equal(t, ExitOK, r.code)
	assert.Contains(t, r.stdout, "marked read")
}

func TestRemove_ShiftsIndexes(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "rm", "2")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, `removed "The Lord of the Rings"`)

	r = run(t, dir, "rm", "2")
	require.Equal(t, ExitOK, r.code)
	assert.Contains(t, r.stdout, `removed "No Country for Old Men"`)
	assert.NotContains(t, snapshot(t, dir), "Rings")
}

func TestIndexErrors(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "rm", "9")
	assert.Equal(t, ExitUsage, r.code)
	assert.Contains(t, r.stderr, "index out of range: have 4, got 9")
	assert.Contains(t, r.stderr, "library ls")

	assert.Equal(t, ExitUsage, run(t, dir, "read", "0").code)
	assert.Equal(t, ExitUsage, run(t, dir, "rm", "abc").code)
	assert.Equal(t, ExitUsage, run(t, dir, "rm").code)
}

func TestReset_RestoresSeed(t *testing.T) {
	dir := t.TempDir()
	require.Equal(t, ExitOK, run(t, dir, "rm", "1").code)

	r := run(t, dir, "reset")

	require.Equal(t, ExitOK, r.code)
	assert.Contains(t, r.stdout, "reset to 4 books")
	assert.Contains(t, snapshot(t, dir), "The Hobbit")
}

func TestUsageErrors(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, ExitUsage, run(t, dir, "frobnicate").code)
	assert.Equal(t, ExitUsage, run(t, dir, "ls", "--nope").code)
	assert.Equal(t, ExitUsage, run(t, dir, "ls", "--backend", "postgres").code)
}

func TestCorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, library.SnapshotKey+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	t.Setenv("LIBRARY_STRICT", "true")
	r := run(t, dir, "ls")
	assert.Equal(t, ExitError, r.code)
	assert.Contains(t, r.stderr, "corrupt library snapshot")

	t.Setenv("LIBRARY_STRICT", "false")
	r = run(t, dir, "ls")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "The Hobbit")
	assert.Contains(t, r.stderr, "discarding corrupt snapshot")
}

func TestSQLiteBackend_PersistsAcrossRuns(t *testing.T) {
	dir := t.TempDir()

	require.Equal(t, ExitOK, run(t, dir, "--backend", "sqlite", "add", "Ubik").code)
	r := run(t, dir, "--backend", "sqlite", "ls")

	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Ubik")
	assert.FileExists(t, filepath.Join(dir, dbFile))
	assert.NoFileExists(t, filepath.Join(dir, library.SnapshotKey+".json"))
}

func TestMemoryBackend_DoesNotPersist(t *testing.T) {
	dir := t.TempDir()

	require.Equal(t, ExitOK, run(t, dir, "--backend", "memory", "rm", "1").code)
	assert.Contains(t, run(t, dir, "--backend", "memory", "ls").stdout, "The Hobbit")
	assert.NoFileExists(t, filepath.Join(dir, library.SnapshotKey+".json"))
}

func TestLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "library.log")

	require.Equal(t, ExitOK, run(t, dir, "-v", "--log-file", logPath, "ls").code)

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "library loaded")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("disk full")))
	assert.Equal(t, ExitUsage, ExitCode(usagef("", "bad")))
}
