// Package output delivers rendered reports to their destinations and
// handles terminal color detection.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Sink receives a fully rendered report block. Delivery is
// fire-and-forget, a sink never reports failure to the caller.
type Sink interface {
	Emit(report string)
}

// StdoutSink writes reports verbatim to standard output.
type StdoutSink struct {
	out io.Writer
}

// NewStdoutSink creates a stdout sink. A nil writer defaults to
// os.Stdout.
func NewStdoutSink(out io.Writer) *StdoutSink {
	if out == nil {
		out = os.Stdout
	}
	return &StdoutSink{out: out}
}

func (s *StdoutSink) Emit(report string) {
	fmt.Fprintln(s.out, report)
}

// DebugSink writes reports to standard error, colorized when the
// destination is an interactive terminal.
type DebugSink struct {
	out    io.Writer
	scheme *ColorScheme
}

// NewDebugSink creates a debug sink. A nil writer defaults to
// os.Stderr.
func NewDebugSink(out io.Writer) *DebugSink {
	if out == nil {
		out = os.Stderr
	}

	scheme := NoColorScheme()
	if isTerminal(out) {
		scheme = DefaultColorScheme()
	}

	return &DebugSink{out: out, scheme: scheme}
}

func (s *DebugSink) Emit(report string) {
	for i, line := range strings.Split(report, "\n") {
		fmt.Fprintln(s.out, s.colorize(i, line))
	}
}

// colorize applies the scheme by line position: the first line is the
// header, the second the separator, and the rest are "Label: value"
// pairs.
func (s *DebugSink) colorize(position int, line string) string {
	switch position {
	case 0:
		return s.scheme.Header.Sprint(line)
	case 1:
		return s.scheme.Separator.Sprint(line)
	}

	label, value, found := strings.Cut(line, ": ")
	if !found {
		return s.scheme.Value.Sprint(line)
	}

	valueColor := s.scheme.Value
	if value == "null" {
		valueColor = s.scheme.Null
	}

	return s.scheme.Label.Sprint(label) + ": " + valueColor.Sprint(value)
}

// LogSink hands reports to a structured logger, tagging each entry
// with the run that produced it.
type LogSink struct {
	logger *zap.SugaredLogger
	runID  string
}

// NewLogSink creates a log sink. A nil logger defaults to a no-op
// logger.
func NewLogSink(logger *zap.SugaredLogger, runID string) *LogSink {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &LogSink{logger: logger, runID: runID}
}

func (s *LogSink) Emit(report string) {
	s.logger.Infow(report, "run", s.runID)
}
