package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func runCLI(t *testing.T, args []string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestCLI_RejectsWrongExtension(t *testing.T) {
	path := writeSource(t, "main.txt", "add :: (int) -> int add x = { x }")
	_, stderr, err := runCLI(t, []string{"--source-path", path})
	if err == nil {
		t.Fatal("expected failure for a non-.az source path")
	}
	if stderr == "" {
		t.Fatal("expected a diagnostic on stderr")
	}
}

func TestCLI_SucceedsOnValidSource(t *testing.T) {
	path := writeSource(t, "main.az", "add :: (int, int) -> int add x y = { x + y }")
	_, stderr, err := runCLI(t, []string{"--source-path", path})
	if err != nil {
		t.Fatalf("unexpected failure: %v (stderr: %s)", err, stderr)
	}
}

func TestCLI_VerboseParseDumpsProgram(t *testing.T) {
	path := writeSource(t, "main.az", "add :: (int, int) -> int add x y = { x + y }")
	stdout, _, err := runCLI(t, []string{"--source-path", path, "--verbose-parse"})
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
	if stdout == "" {
		t.Fatal("expected --verbose-parse to print something to stdout")
	}
}

func TestCLI_ReportsLexFailureDiagnostic(t *testing.T) {
	path := writeSource(t, "main.az", "let 1x <- 2;")
	_, stderr, err := runCLI(t, []string{"--source-path", path})
	if err == nil {
		t.Fatal("expected a lexer failure")
	}
	if stderr == "" {
		t.Fatal("expected a diagnostic on stderr")
	}
}
