// Package logging holds the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	zlog = zerolog.New(os.Stderr).With().Timestamp().Str("service", "showcase").Logger()
)

// Init configures the process logger. format is "console" for human-readable
// output or "json"; level is any zerolog level name.
func Init(level, format string) error {
	return InitWriter(os.Stderr, level, format)
}

// InitWriter is Init with an explicit destination.
func InitWriter(out io.Writer, level, format string) error {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		lvl, err = zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	var w io.Writer
	switch format {
	case "", "console":
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: out != os.Stderr}
	case "json":
		w = out
	default:
		return fmt.Errorf("invalid log format %q (want console or json)", format)
	}

	zerolog.TimeFieldFormat = time.RFC3339

	mu.Lock()
	zlog = zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str("service", "showcase").
		Logger()
	mu.Unlock()
	return nil
}

// L returns the process logger.
func L() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := zlog
	return &l
}

// With returns a child logger tagged with a component name.
func With(component string) zerolog.Logger {
	return L().With().Str("component", component).Logger()
}

// RequestLogger logs every request after it completes. It expects chi's
// RequestID middleware to run first.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log := L()
		event := log.Info()
		if status >= 500 {
			event = log.Error()
		} else if status >= 400 {
			event = log.Warn()
		}
		event.
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", r.RemoteAddr).
			Int("body_size", ww.BytesWritten()).
			Msg("request")
	})
}
