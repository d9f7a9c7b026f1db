package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/azalea-lang/azalea/internal/span"
)

// Formatter renders Diagnostics to a writer in a caret-underlined format,
// coloring the severity tag and the underline. Color is governed by
// fatih/color's own detection (disabled automatically when the process's
// standard output isn't a terminal or NO_COLOR is set), not by the writer
// passed to Print.
type Formatter struct {
	errorTag *color.Color
	caret    *color.Color
	label    *color.Color
}

// NewFormatter constructs a Formatter with the front end's standard palette.
func NewFormatter() *Formatter {
	return &Formatter{
		errorTag: color.New(color.FgRed, color.Bold),
		caret:    color.New(color.FgRed, color.Bold),
		label:    color.New(color.FgCyan),
	}
}

// Print writes one diagnostic to w in the form:
//
//	error[bad-character]: <title>
//	  --> path:line:column
//	   |
//	 N | <source line>
//	   | ^ <label>
//	   = note: <note>
func (f *Formatter) Print(w io.Writer, d Diagnostic) {
	sev := string(d.Severity)
	if sev == "" {
		sev = "error"
	}
	f.errorTag.Fprintf(w, "%s[%s]", sev, d.Code)
	fmt.Fprintf(w, ": %s\n", d.Title)

	pt := span.New(d.Source).At(d.Offset)
	path := d.Path
	if path == "" {
		path = "<input>"
	}
	fmt.Fprintf(w, "  --> %s:%d:%d\n", path, pt.Line, pt.Column)

	lines := strings.Split(d.Source, "\n")
	lineNumWidth := len(fmt.Sprintf("%d", pt.Line))
	pad := strings.Repeat(" ", lineNumWidth)

	fmt.Fprintf(w, " %s |\n", pad)
	var lineContent string
	if pt.Line-1 < len(lines) {
		lineContent = lines[pt.Line-1]
	}
	fmt.Fprintf(w, " %*d | %s\n", lineNumWidth, pt.Line, lineContent)

	col := pt.Column - 1
	if col < 0 {
		col = 0
	}
	underline := strings.Repeat(" ", col)
	fmt.Fprintf(w, " %s | %s", pad, underline)
	f.caret.Fprint(w, "^")
	if d.Label != "" {
		fmt.Fprint(w, " ")
		f.label.Fprint(w, d.Label)
	}
	fmt.Fprintln(w)

	if d.Note != "" {
		fmt.Fprintf(w, "   = note: %s\n", d.Note)
	}
}
