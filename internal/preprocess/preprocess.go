// Package preprocess implements the Azalea preprocessor: it normalizes raw
// source to 7-bit ASCII and replaces comments with whitespace of identical
// length, so every surviving character keeps its original byte offset for
// later diagnostics.
package preprocess

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/azalea-lang/azalea/internal/diag"
)

// Failed is returned by any stage once it has reported a diagnostic and
// aborted. The path identifies the source file being processed.
type Failed struct {
	Path string
}

func (e *Failed) Error() string {
	return fmt.Sprintf("preprocess: failed on %q", e.Path)
}

// acceptedPunctuation is the exact punctuation set normalize-to-ASCII
// allows outside letters, digits, and whitespace.
var acceptedPunctuation = map[byte]bool{
	';': true, ':': true, '_': true, ',': true,
	'(': true, ')': true, '{': true, '}': true,
	'+': true, '-': true, '*': true, '/': true,
	'%': true, '&': true, '|': true, '=': true,
	'<': true, '>': true, '!': true,
}

func isLetterOrDigit(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9'
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

// Preprocessor chains the three normalization stages over a source buffer,
// returning itself by value from each step so the calls can be composed
// fluently.
type Preprocessor struct {
	content string
	path    string
	diags   []diag.Diagnostic
}

// New constructs a Preprocessor over raw source attributed to path.
func New(content, path string) Preprocessor {
	return Preprocessor{content: content, path: path}
}

// Diagnostics returns any diagnostics recorded by a failed stage.
func (p Preprocessor) Diagnostics() []diag.Diagnostic { return p.diags }

// NormalizeToASCII validates that every character is a letter, digit,
// whitespace, or member of the accepted punctuation set. The first
// violation emits a bad-character diagnostic and fails the whole chain.
func (p Preprocessor) NormalizeToASCII() (Preprocessor, error) {
	for i := 0; i < len(p.content); i++ {
		ch := p.content[i]
		if ch > 0x7f {
			p.diags = append(p.diags, diag.New(
				diag.CodeBadCharacter, i,
				"source contains a non-ASCII character",
				"not representable in 7-bit ASCII",
				"Azalea source files are restricted to 7-bit ASCII",
				p.content,
			).WithPath(p.path))
			return p, errors.WithStack(&Failed{Path: p.path})
		}
		if isLetterOrDigit(ch) || isWhitespace(ch) || acceptedPunctuation[ch] {
			continue
		}
		p.diags = append(p.diags, diag.New(
			diag.CodeBadCharacter, i,
			fmt.Sprintf("unexpected character %q", ch),
			"not a letter, digit, whitespace, or accepted punctuation",
			"accepted punctuation is { ; : _ , ( ) { } + - * / % & | = < > ! }",
			p.content,
		).WithPath(p.path))
		return p, errors.WithStack(&Failed{Path: p.path})
	}
	return p, nil
}

// RemoveMultiLineComments replaces every /*...*/ region with whitespace of
// the same length: original whitespace characters are preserved at their
// offsets, every other character is replaced with a space. An unterminated
// comment emits missing-terminator anchored just past the opening "/*"
// (offset of the character immediately following it) and fails.
func (p Preprocessor) RemoveMultiLineComments() (Preprocessor, error) {
	src := p.content
	out := make([]byte, len(src))
	copy(out, src)

	for i := 0; i < len(src); i++ {
		if src[i] != '/' || i+1 >= len(src) || src[i+1] != '*' {
			continue
		}
		j := i + 2
		closed := false
		for j+1 < len(src) {
			if src[j] == '*' && src[j+1] == '/' {
				closed = true
				break
			}
			j++
		}
		if !closed {
			anchor := i + 2
			if anchor > len(src) {
				anchor = len(src)
			}
			p.diags = append(p.diags, diag.New(
				diag.CodeMissingTerminator, anchor,
				"unterminated block comment",
				"comment opened here is never closed",
				"block comments must be closed with */ before end of input",
				src,
			).WithPath(p.path))
			return p, errors.WithStack(&Failed{Path: p.path})
		}
		for k := i; k < j+2; k++ {
			if isWhitespace(src[k]) {
				out[k] = src[k]
			} else {
				out[k] = ' '
			}
		}
		i = j + 1
	}

	p.content = string(out)
	return p, nil
}

// RemoveSingleLineComments replaces every "//" run up to (but not
// including) the next newline with spaces, preserving the terminating
// newline so line numbers stay aligned.
func (p Preprocessor) RemoveSingleLineComments() (Preprocessor, error) {
	src := p.content
	out := make([]byte, len(src))
	copy(out, src)

	for i := 0; i < len(src); i++ {
		if src[i] != '/' || i+1 >= len(src) || src[i+1] != '/' {
			continue
		}
		j := i
		for j < len(src) && src[j] != '\n' {
			out[j] = ' '
			j++
		}
		i = j
	}

	p.content = string(out)
	return p, nil
}

// Cleaned returns the fully normalized source text.
func (p Preprocessor) Cleaned() string { return p.content }
