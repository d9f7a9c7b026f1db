package diag_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/azalea-lang/azalea/internal/diag"
)

func TestNew_DefaultsToErrorSeverity(t *testing.T) {
	d := diag.New(diag.CodeBadCharacter, 4, "bad character", "here", "ascii only", "let x = @;")
	if d.Severity != diag.SeverityError {
		t.Fatalf("expected severity %q, got %q", diag.SeverityError, d.Severity)
	}
	if d.Code != diag.CodeBadCharacter {
		t.Fatalf("expected code %q, got %q", diag.CodeBadCharacter, d.Code)
	}
}

func TestWithPath(t *testing.T) {
	d := diag.New(diag.CodeMissingTerminator, 2, "t", "l", "n", "/* missing")
	d = d.WithPath("main.az")
	if d.Path != "main.az" {
		t.Fatalf("expected path to be set, got %q", d.Path)
	}
}

func TestFormatter_Print_RendersCaretAndNote(t *testing.T) {
	src := "let 1x <- 2;"
	d := diag.New(diag.CodeInvalidIdent, 4, "invalid identifier", "digit adjacent to letter", "identifiers may not begin with a digit", src).WithPath("main.az")

	var buf bytes.Buffer
	diag.NewFormatter().Print(&buf, d)
	out := buf.String()

	for _, want := range []string{
		"error[invalid-ident]: invalid identifier",
		"main.az:1:5",
		"let 1x <- 2;",
		"digit adjacent to letter",
		"= note: identifiers may not begin with a digit",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
