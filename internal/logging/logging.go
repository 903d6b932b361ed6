package logging

import (
	"io"
	"log/slog"
)

// VerbosityLevel defines the logging verbosity.
type VerbosityLevel int

const (
	Verbose VerbosityLevel = iota
	Info
	Warning
	Error
	Off
)

// ParseVerbosity maps the CLI's verbosity names onto a VerbosityLevel,
// mirroring cmd/main.go's setupCliAndLogger switch. Each name is accepted
// capitalized ("Info") or all lower-case ("info"); other spellings are
// rejected. An empty name means Info.
func ParseVerbosity(name string) (VerbosityLevel, bool) {
	switch name {
	case "Verbose", "verbose":
		return Verbose, true
	case "Info", "info", "":
		return Info, true
	case "Warning", "warning":
		return Warning, true
	case "Error", "error":
		return Error, true
	case "Off", "off":
		return Off, true
	default:
		return Info, false
	}
}

// slogLevel maps a VerbosityLevel onto the equivalent slog.Level.
func (v VerbosityLevel) slogLevel() slog.Level {
	switch v {
	case Verbose:
		return slog.LevelDebug
	case Info:
		return slog.LevelInfo
	case Warning:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default: // Off
		return slog.Level(slog.LevelError + 42)
	}
}

// NewLogger builds a *slog.Logger at the given verbosity, writing to w. A
// nil w defaults to io.Discard with a JSON handler (used by callers that
// want a logger in hand without configuring output, e.g. library tests);
// a non-nil w uses a text handler, matching setupCliAndLogger's CLI-facing
// choice of format.
func NewLogger(level VerbosityLevel, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level.slogLevel()}
	if w == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
