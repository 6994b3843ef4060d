package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Glyphs prefixed to diagnostic lines for quick scanning in pipeline logs.
const (
	GlyphProgress = "🔹"
	GlyphSuccess  = "✅"
	GlyphFailure  = "❌"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	NoColor       bool
	Writer        io.Writer
}

// Logger wraps zerolog to provide a simplified API for the application.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
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
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		console.NoColor = opts.NoColor
		output = console
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: logger}, nil
}

// Nop returns a logger that discards every entry.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
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

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Progress announces the start of a step.
func (l *Logger) Progress(msg string) {
	l.Info(GlyphProgress + " " + msg)
}

// Success records a step that completed. Captured command output, when
// present, is attached as a field rather than folded into the message.
func (l *Logger) Success(msg, output string) {
	if l == nil {
		return
	}
	event := l.base.Info()
	if output != "" {
		event = event.Str("output", output)
	}
	event.Msg(GlyphSuccess + " " + msg)
}

// Failure records a failed step at error level. detail is the captured
// diagnostic text; when empty the error message is used instead.
func (l *Logger) Failure(err error, msg, detail string) {
	if l == nil {
		return
	}
	if detail == "" && err != nil {
		detail = err.Error()
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	if detail != "" {
		event = event.Str("detail", detail)
	}
	event.Msg(GlyphFailure + " " + msg)
}
