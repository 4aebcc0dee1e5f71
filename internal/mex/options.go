package mex

import "log/slog"

type Options struct {
	// Logger receives debug records for rejected operations.
	Logger *slog.Logger
	// StrictRemoval makes Remove of an absent value return ErrNotPresent
	// instead of being a no-op.
	StrictRemoval bool
}

var DefaultOptions = Options{
	Logger:        slog.New(slog.DiscardHandler),
	StrictRemoval: false,
}

type Option func(*Options)

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func WithStrictRemoval() Option {
	return func(o *Options) {
		o.StrictRemoval = true
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
