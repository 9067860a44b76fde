package options

import "runtime"

type ConvertOptions struct {
	debug bool

	// Clamp pins float components into [0, 1] after conversion.
	Clamp bool

	// Workers is the number of goroutines converting rows. Zero or less means one per CPU.
	Workers int
}

type Option func(*ConvertOptions)

func WithClamp() Option {
	return func(o *ConvertOptions) {
		o.Clamp = true
	}
}

func WithWorkers(workers int) Option {
	return func(o *ConvertOptions) {
		o.Workers = workers
	}
}

func WithDebug() Option {
	return func(o *ConvertOptions) {
		o.debug = true
	}
}

// NewConvertOptions copies options, filling in defaults. A nil options gives the defaults.
func NewConvertOptions(options *ConvertOptions) *ConvertOptions {

	opt := &ConvertOptions{}
	if options != nil {
		opt.debug = options.debug
		opt.Clamp = options.Clamp
		opt.Workers = options.Workers
	}
	if opt.Workers <= 0 {
		opt.Workers = runtime.NumCPU()
	}
	return opt
}

func New(opts ...Option) *ConvertOptions {
	opt := &ConvertOptions{}
	for _, o := range opts {
		o(opt)
	}
	return NewConvertOptions(opt)
}

func (o *ConvertOptions) Debug() bool {
	return o.debug
}
