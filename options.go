package structenv

import "log/slog"

// Option configures a decode call.
type Option func(*options)

type options struct {
	prefix string
	logger *slog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithPrefix prepends prefix to every derived key.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithLogger traces key resolution at debug level. Nil loggers are ignored.
// Errors are returned, never logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
