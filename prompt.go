package cheqprint_smoke

import (
	"bufio"
	"io"
	"log/slog"
	"strings"

	cpInterfaces "github.com/voxtmault/cheqprint-smoke/interfaces"
	cpReport "github.com/voxtmault/cheqprint-smoke/report"
	cpUtil "github.com/voxtmault/cheqprint-smoke/utils"
)

// LinePrompter asks a yes/no question and reads a single line as the answer.
type LinePrompter struct {
	reader   *bufio.Reader
	reporter *cpReport.Reporter
}

var _ cpInterfaces.Prompter = &LinePrompter{}

func NewLinePrompter(in io.Reader, reporter *cpReport.Reporter) *LinePrompter {
	return &LinePrompter{
		reader:   bufio.NewReader(in),
		reporter: reporter,
	}
}

func (p *LinePrompter) Confirm(question string) bool {
	p.reporter.Prompt("\n⚠️  " + question + " (o/N): ")

	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		slog.Debug("no answer read", "reason", err)
		return false
	}

	return IsAffirmative(line)
}

// IsAffirmative reports whether the answer is the affirmative token. Only the line terminator
// is stripped and the comparison ignores case, anything else is a refusal.
func IsAffirmative(answer string) bool {
	answer = strings.TrimRight(answer, "\r\n")
	return strings.ToLower(answer) == cpUtil.AffirmativeAnswer
}
