package msd

import "log/slog"

// Option configures how a song file is opened.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() *options {
	return &options{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger used for close failures and debug output.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
