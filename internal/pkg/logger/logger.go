package logger

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-chi/httplog/v3"
	"github.com/google/uuid"
)

type Options struct {
	App     string
	Version string
	Env     string
	Level   string
	// Concise drops the verbose ECS fields when true.
	Concise bool
}

// New returns a JSON slog logger using the ECS key layout.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	var level slog.Level
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
	}

	logFormat := httplog.SchemaECS.Concise(opts.Concise)
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", opts.App),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)

	return logger, nil
}

// WithRunID tags every record with a fresh UUIDv7 run id and returns it.
func WithRunID(logger *slog.Logger) (*slog.Logger, string) {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	runID := id.String()
	return logger.With(slog.String("run_id", runID)), runID
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
