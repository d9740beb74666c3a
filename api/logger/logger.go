package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	config "github.com/tbeaudouin05/startupstack-checkout/api/config"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const contextKeyRequestID contextKey = "request_id"

// New builds the process logger and installs it as the slog default. Production
// logs JSON; development logs text at debug level.
func New(cfg *config.Config) *slog.Logger {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	var h slog.Handler
	if cfg != nil && cfg.IsDevelopment() {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	l := slog.New(contextHandler{Handler: h})
	slog.SetDefault(l)
	return l
}

// WithRequestID attaches a request id to ctx. Records logged with that context
// carry it as request_id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, id)
}

// RequestID returns the request id attached to ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}

type contextHandler struct {
	slog.Handler
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := RequestID(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{Handler: h.Handler.WithGroup(name)}
}
