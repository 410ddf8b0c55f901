package las

import (
	"fmt"

	"go.uber.org/zap"
)

type options struct {
	logger         *zap.Logger
	keepDescending bool
	dataFormat     *DataFormat
}

// Option configures parsing or composing.
type Option func(*options) error

func applyOptions(opts []Option) (*options, error) {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithLogger returns an Option that installs a logger for debug events:
// duplicate mnemonic renames, sections degraded to raw text, tab
// normalization, and step sign inference. The default is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return fmt.Errorf("las: logger must not be nil")
		}
		o.logger = l
		return nil
	}
}

// KeepDescendingOrder returns an Option that disables the ascending
// normalization on decode, keeping samples in on-disk order.
func KeepDescendingOrder() Option {
	return func(o *options) error {
		o.keepDescending = true
		return nil
	}
}

// WithDataFormat returns an Option that overrides the data section output
// format on compose.
func WithDataFormat(f DataFormat) Option {
	return func(o *options) error {
		if f.ColumnWidth < 0 || f.Precision < 0 {
			return fmt.Errorf("las: column width and precision must be non-negative")
		}
		o.dataFormat = &f
		return nil
	}
}
