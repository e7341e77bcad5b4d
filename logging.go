package securerequests

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger assembles the client logger from the config. The returned closer
// is non-nil only when a file sink is in use.
func newLogger(cfg *Config) (*slog.Logger, io.Closer) {
	if cfg.Silent {
		return slog.New(slog.DiscardHandler), nil
	}
	if cfg.LogToFile {
		sink := &lumberjack.Logger{
			Filename:   cfg.LogPath,
			MaxSize:    20, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
		}
		return slog.New(&lineHandler{w: sink, level: cfg.LogLevel}), sink
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	return slog.New(h), nil
}

// lineHandler emits records in the flat file format
//
//	[2024-07-15 12:00:00][INFO][request] message key=value
//
// The "category" attribute selects the bracketed category; all other
// attributes are appended as key=value pairs.
type lineHandler struct {
	w     io.Writer
	level slog.Level
	attrs []slog.Attr
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	category := "secureRequests"
	var extra strings.Builder
	collect := func(a slog.Attr) bool {
		if a.Key == "category" {
			category = a.Value.String()
			return true
		}
		fmt.Fprintf(&extra, " %s=%s", a.Key, a.Value.String())
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(collect)

	_, err := fmt.Fprintf(h.w, "[%s][%s][%s] %s%s\n",
		r.Time.Format("2006-01-02 15:04:05"), r.Level, category, r.Message, extra.String())
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &nh
}

func (h *lineHandler) WithGroup(string) slog.Handler { return h }
