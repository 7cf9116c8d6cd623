package xmldom

import "go.uber.org/zap"

// Option configures parsing.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger routes parser diagnostics, such as skipped processing
// instructions, to logger. The default discards them.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
