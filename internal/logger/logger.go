// Package logger configures the zerolog logger shared across twmerge
// subsystems. Entries go to stderr by default so merged class lists on
// stdout stay pipeable. The merge engine in pkg/ never logs.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format selects how entries are rendered.
type Format string

const (
	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
	// FormatConsole writes colored lines for terminals.
	FormatConsole Format = "console"
)

// ParseFormat maps a --log-format value to a Format. The empty string yields
// fallback, which lets the flag defer to the configuration file.
func ParseFormat(value string, fallback Format) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "":
		return fallback, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatConsole:
		return FormatConsole, nil
	}
	return "", fmt.Errorf("unknown log format %q", value)
}

// FormatFor returns the format matching the log.human_readable setting.
func FormatFor(humanReadable bool) Format {
	if humanReadable {
		return FormatConsole
	}
	return FormatJSON
}

// Options is built from the log section of the configuration and the root
// command's flags.
type Options struct {
	Level  string
	Format Format
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// Logger is the handle the root command builds and passes down. A nil
// *Logger is valid and drops every entry.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger. Level accepts zerolog level names in any case.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	switch opts.Format {
	case "", FormatJSON:
	case FormatConsole:
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	base := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

// Nop returns a logger that discards every entry.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// Component tags every entry with the subsystem that wrote it, such as
// "server" or "audit".
func (l *Logger) Component(name string) *Logger {
	if l == nil {
		return nil
	}
	derived := Logger{base: l.base.With().Str("component", name).Logger()}
	return &derived
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// Zerolog exposes the underlying logger to the HTTP request middleware,
// which writes per-request fields directly.
func (l *Logger) Zerolog() *zerolog.Logger {
	if l == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return &l.base
}

func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error logs msg with err attached under the "error" key. A nil err is
// omitted.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
