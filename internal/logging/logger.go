package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ivlev/directorkit/internal/config"
)

// Init installs the default slog logger: text to stderr, and to cfg.Path
// as well when one is set. The previous log file is kept as <path>.old.
// The returned func closes the file.
func Init(cfg config.LogConfig) (func(), error) {
	level := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	console := slog.NewTextHandler(os.Stderr, opts)
	if cfg.Path == "" {
		slog.SetDefault(slog.New(console))
		return func() {}, nil
	}

	file, err := openRotated(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("log file %s: %w", cfg.Path, err)
	}

	fileOpts := &slog.HandlerOptions{Level: level, AddSource: level == slog.LevelDebug}
	slog.SetDefault(slog.New(&multiHandler{handlers: []slog.Handler{
		console,
		slog.NewTextHandler(file, fileOpts),
	}}))

	return func() { file.Close() }, nil
}

// ParseLevel maps DEBUG/INFO/WARN/ERROR to a slog level. Anything else is INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openRotated(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err == nil {
		old := path + ".old"
		_ = os.Remove(old)
		_ = os.Rename(path, old)
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

//nolint:gocritic // slog.Handler takes the record by value
func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		hs[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: hs}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		hs[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: hs}
}
