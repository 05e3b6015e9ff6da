package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Options selects the output format and optional error reporting.
type Options struct {
	Service     string // attached to every record as "service"
	Environment string
	Development bool   // colored text at Debug instead of JSON at Info
	SentryDSN   string // errors are also sent to Sentry when set
}

// Init builds the process logger and installs it as the slog default.
func Init(opts Options) {
	slog.SetDefault(New(os.Stdout, opts))
}

// New builds a logger writing to w without touching the global default.
func New(w io.Writer, opts Options) *slog.Logger {
	base := consoleHandler(w, opts.Development)

	handler := base
	if opts.SentryDSN != "" {
		sentryHandler, err := newSentryHandler(opts)
		if err != nil {
			slog.New(base).Warn("sentry disabled", "error", err)
		} else {
			handler = slogmulti.Fanout(base, sentryHandler)
		}
	}

	log := slog.New(handler)
	if opts.Service != "" {
		log = log.With("service", opts.Service)
	}
	return log
}

func consoleHandler(w io.Writer, development bool) slog.Handler {
	if development {
		return tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}

// newSentryHandler forwards Error records only.
func newSentryHandler(opts Options) (slog.Handler, error) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         opts.SentryDSN,
		Environment: opts.Environment,
	})
	if err != nil {
		return nil, err
	}

	return slogsentry.Option{
		Level: slog.LevelError,
	}.NewSentryHandler(), nil
}

// Flush waits up to timeout for buffered Sentry events. It is a no-op when
// Sentry was never initialized.
func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}
