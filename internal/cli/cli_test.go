package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"twodo/internal/store"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	// Keep a user-level twodo.yaml from leaking into test runs.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func TestAddThenList(t *testing.T) {
	file := filepath.Join(t.TempDir(), "TODO")

	out, stderr, err := runCLI(t, []string{"add", "Buy", "milk", "--file", file})
	if err != nil {
		t.Fatalf("add failed: %v\nstderr:\n%s", err, stderr)
	}
	if !strings.Contains(string(out), "added: Buy milk") {
		t.Fatalf("expected add confirmation, got %q", string(out))
	}

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read task file: %v", err)
	}
	if got := string(data); got != "TODO: Buy milk\n" {
		t.Fatalf("unexpected task file contents %q", got)
	}

	out, stderr, err = runCLI(t, []string{"list", file})
	if err != nil {
		t.Fatalf("list failed: %v\nstderr:\n%s", err, stderr)
	}
	if got := string(out); got != "- [ ] Buy milk\n" {
		t.Fatalf("unexpected list output %q", got)
	}
}

func TestListFlagsSelectPanels(t *testing.T) {
	file := filepath.Join(t.TempDir(), "TODO")
	if err := store.Save(file, []string{"pending"}, []string{"finished"}); err != nil {
		t.Fatalf("seed task file: %v", err)
	}

	out, _, err := runCLI(t, []string{"list", file})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if got := string(out); got != "- [ ] pending\n" {
		t.Fatalf("expected pending items only, got %q", got)
	}

	out, _, err = runCLI(t, []string{"list", "--done", file})
	if err != nil {
		t.Fatalf("list --done failed: %v", err)
	}
	if got := string(out); got != "- [x] finished\n" {
		t.Fatalf("expected finished items only, got %q", got)
	}

	out, _, err = runCLI(t, []string{"list", "--all", file})
	if err != nil {
		t.Fatalf("list --all failed: %v", err)
	}
	if got := string(out); got != "- [ ] pending\n- [x] finished\n" {
		t.Fatalf("expected both lists, got %q", got)
	}
}

func TestListReportsIllFormedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "TODO")
	if err := os.WriteFile(file, []byte("TODO: ok\njunk line\n"), 0o644); err != nil {
		t.Fatalf("seed task file: %v", err)
	}

	_, _, err := runCLI(t, []string{"list", file})
	if err == nil {
		t.Fatalf("expected an error for an ill-formed file")
	}
	var pe *store.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a parse error, got %v", err)
	}
	if pe.Line != 2 {
		t.Fatalf("expected the offending line number, got %d", pe.Line)
	}
}

func TestBoardStartupFailsOnIllFormedFile(t *testing.T) {
	// The parse failure must surface before any terminal takeover, so this
	// is safe to run headless.
	file := filepath.Join(t.TempDir(), "TODO")
	if err := os.WriteFile(file, []byte("what is this\n"), 0o644); err != nil {
		t.Fatalf("seed task file: %v", err)
	}

	_, _, err := runCLI(t, []string{file, "--history=false"})
	if err == nil {
		t.Fatalf("expected startup to fail on an ill-formed file")
	}
	var pe *store.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a parse error, got %v", err)
	}
	if pe.Line != 1 {
		t.Fatalf("expected line 1, got %d", pe.Line)
	}
}

func TestHistoryCommandPrintsEvents(t *testing.T) {
	file := filepath.Join(t.TempDir(), "TODO")

	for _, title := range []string{"Buy milk", "Walk dog"} {
		if _, stderr, err := runCLI(t, []string{"add", title, "--file", file}); err != nil {
			t.Fatalf("add %q failed: %v\nstderr:\n%s", title, err, stderr)
		}
	}

	out, _, err := runCLI(t, []string{"history", file})
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, "add") || !strings.Contains(got, "Buy milk") || !strings.Contains(got, "Walk dog") {
		t.Fatalf("expected both add events, got %q", got)
	}

	out, _, err = runCLI(t, []string{"history", "--limit", "1", file})
	if err != nil {
		t.Fatalf("history --limit failed: %v", err)
	}
	got = string(out)
	if !strings.Contains(got, "Walk dog") || strings.Contains(got, "Buy milk") {
		t.Fatalf("expected only the newest event, got %q", got)
	}
}

func TestHistoryDisabledSkipsSidecar(t *testing.T) {
	file := filepath.Join(t.TempDir(), "TODO")

	if _, stderr, err := runCLI(t, []string{"add", "quiet one", "--file", file, "--history=false"}); err != nil {
		t.Fatalf("add failed: %v\nstderr:\n%s", err, stderr)
	}

	if _, err := os.Stat(store.HistoryPath(file)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no history sidecar, stat err %v", err)
	}
}

func TestVersionPrints(t *testing.T) {
	out, _, err := runCLI(t, []string{"version"})
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(string(out), "twodo") {
		t.Fatalf("expected version output, got %q", string(out))
	}
}
