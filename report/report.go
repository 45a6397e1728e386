package cheqprint_report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
)

const ruleWidth = 60

var (
	headerStyle  = color.New(color.OpBold, color.FgBlue)
	successStyle = color.New(color.FgGreen)
	errorStyle   = color.New(color.FgRed)
	infoStyle    = color.New(color.FgYellow)
)

// Reporter writes the operator facing output of a run. Diagnostics go to slog instead.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) Header(text string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(r.out, "\n%s\n%s\n%s\n\n",
		headerStyle.Sprint(rule),
		headerStyle.Sprint("  "+text),
		headerStyle.Sprint(rule),
	)
}

func (r *Reporter) Success(format string, args ...any) {
	fmt.Fprintln(r.out, successStyle.Sprint("✓ "+fmt.Sprintf(format, args...)))
}

func (r *Reporter) Error(format string, args ...any) {
	fmt.Fprintln(r.out, errorStyle.Sprint("✗ "+fmt.Sprintf(format, args...)))
}

func (r *Reporter) Info(format string, args ...any) {
	fmt.Fprintln(r.out, infoStyle.Sprint("→ "+fmt.Sprintf(format, args...)))
}

// Item prints an indented detail line under the current probe
func (r *Reporter) Item(format string, args ...any) {
	fmt.Fprintln(r.out, "   "+fmt.Sprintf(format, args...))
}

// Prompt prints text without a trailing newline
func (r *Reporter) Prompt(text string) {
	fmt.Fprint(r.out, text)
}
