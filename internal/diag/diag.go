// Package diag defines the Azalea compiler's diagnostic model: a
// source-anchored error with a severity, a stable code, a short title, an
// inline label, and an explanatory note.
package diag

// Severity classifies how impactful a diagnostic is. The front end only
// ever emits Error severity; Warning and Note are carried for parity with
// the reporter's general shape and for future stages.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable diagnostic identifier shared across the compiler's
// stages.
type Code string

const (
	CodeUnsupportedChar       Code = "unsupported-char"
	CodeIncompleteTQualifier  Code = "incomplete-TQualifier"
	CodeInvalidIdent          Code = "invalid-ident"
	CodeMisplacedUnderscore   Code = "misplaced-underscore"
	CodeInvalidFloat          Code = "invalid-float"
	CodeBadCharacter          Code = "bad-character"
	CodeMissingTerminator     Code = "missing-terminator"
	CodeUnexpectedToken       Code = "unexpected-token"
	CodeMissingType           Code = "missing-type"
	CodeMissingComma          Code = "missing-comma"
	CodeVarBindMissingRHS     Code = "var-bind-missing-rhs"
	CodeIncompleteBinaryOp    Code = "incomplete-binary-op"
	CodeMissingExpressionAtKw Code = "missing-expression-at"
	CodeDupFunctionDef        Code = "dup-function-def"
	CodeDupChoiceDef          Code = "dup-choice-def"
	CodeDupStructureDef       Code = "dup-structure-def"
	CodeIncorrectFileExt      Code = "incorrect-file-ext"
)

// Diagnostic is a single rich, source-anchored compiler error.
type Diagnostic struct {
	// Path is the source file path, used only for display.
	Path string
	// Offset is the byte offset into the cleaned source that the
	// diagnostic is anchored to.
	Offset int
	// Severity is always SeverityError for this front end today.
	Severity Severity
	// Code is the stable identifier from the catalogue above.
	Code Code
	// Title is the short, one-line summary shown on the header line.
	Title string
	// Label decorates the caret-underlined span inline.
	Label string
	// Note is free-form explanatory text printed below the snippet.
	Note string
	// Source is the cleaned source text the offset is relative to, kept
	// so the reporter can render a snippet without re-reading the file.
	Source string
}

// New builds a Diagnostic with SeverityError, the common case for every
// stage in this front end.
func New(code Code, offset int, title, label, note, source string) Diagnostic {
	return Diagnostic{
		Offset:   offset,
		Severity: SeverityError,
		Code:     code,
		Title:    title,
		Label:    label,
		Note:     note,
		Source:   source,
	}
}

// WithPath returns a copy of d attributed to the given source path.
func (d Diagnostic) WithPath(path string) Diagnostic {
	d.Path = path
	return d
}
