package preprocess_test

import (
	"errors"
	"testing"

	"github.com/azalea-lang/azalea/internal/preprocess"
)

func chain(src string) (preprocess.Preprocessor, error) {
	p := preprocess.New(src, "main.az")
	p, err := p.NormalizeToASCII()
	if err != nil {
		return p, err
	}
	p, err = p.RemoveMultiLineComments()
	if err != nil {
		return p, err
	}
	return p.RemoveSingleLineComments()
}

func TestNormalizeToASCII_RejectsNonASCII(t *testing.T) {
	_, err := chain("let x <- 1; // caf\xc3\xa9")
	if err == nil {
		t.Fatal("expected failure on non-ASCII byte")
	}
	var failed *preprocess.Failed
	if !errors.As(err, &failed) {
		t.Fatalf("expected *preprocess.Failed, got %T", err)
	}
}

func TestNormalizeToASCII_RejectsDisallowedPunctuation(t *testing.T) {
	_, err := chain("let x <- @;")
	if err == nil {
		t.Fatal("expected failure on disallowed punctuation")
	}
}

func TestNormalizeToASCII_AcceptsPunctuationSet(t *testing.T) {
	_, err := chain("foo :: (int) -> int foo x = { x; };")
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
}

func TestRemoveMultiLineComments_PreservesLengthAndNewlines(t *testing.T) {
	src := "let x <- /* a\nb */ 1;"
	p, err := chain(src)
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
	cleaned := p.Cleaned()
	if len(cleaned) != len(src) {
		t.Fatalf("expected length %d, got %d", len(src), len(cleaned))
	}
	if cleaned != "let x <-     \n     1;" {
		// newline inside the comment must survive at its original offset
		for i := range src {
			if src[i] == '\n' && cleaned[i] != '\n' {
				t.Fatalf("newline at offset %d was not preserved: %q", i, cleaned)
			}
		}
	}
}

func TestRemoveMultiLineComments_Unterminated(t *testing.T) {
	p, err := chain("/* missing")
	if err == nil {
		t.Fatal("expected missing-terminator failure")
	}
	diags := p.Diagnostics()
	if len(diags) == 0 {
		t.Fatal("expected a missing-terminator diagnostic")
	}
	last := diags[len(diags)-1]
	if last.Code != "missing-terminator" {
		t.Fatalf("expected missing-terminator code, got %q", last.Code)
	}
	if last.Offset != 2 {
		t.Fatalf("expected diagnostic anchored at offset 2 (just past \"/*\"), got %d", last.Offset)
	}
}

func TestRemoveSingleLineComments_PreservesTrailingNewline(t *testing.T) {
	src := "let x <- 1; // trailing\nlet y <- 2;"
	p, err := chain(src)
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
	cleaned := p.Cleaned()
	if len(cleaned) != len(src) {
		t.Fatalf("expected length %d, got %d", len(src), len(cleaned))
	}
	if cleaned[len("let x <- 1; // trailing")] != '\n' {
		t.Fatalf("expected newline preserved, got %q", cleaned)
	}
}

func TestIdempotent_ApplyingTwiceEqualsOnce(t *testing.T) {
	src := "let x <- /* c */ 1; // trailing\n"
	once, err := chain(src)
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
	twice, err := chain(once.Cleaned())
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
	if once.Cleaned() != twice.Cleaned() {
		t.Fatalf("expected idempotent cleaning, got %q vs %q", once.Cleaned(), twice.Cleaned())
	}
}
