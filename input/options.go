// SPDX-License-Identifier: MIT

package input

// Options controls how cells become a matrix. Fields are unexported; use WithX.
type Options struct {
	blankAsZero bool
	maxOrder    int
}

// Option mutates Options.
type Option func(*Options)

// WithBlankAsZero reads blank cells as 0 instead of rejecting them.
func WithBlankAsZero() Option {
	return func(o *Options) { o.blankAsZero = true }
}

// WithMaxOrder rejects matrices of order above n with adjugate.ErrTooLarge
// (0 = unbounded). Panics when n < 0.
func WithMaxOrder(n int) Option {
	if n < 0 {
		panic("input: WithMaxOrder: order must be >= 0")
	}

	return func(o *Options) { o.maxOrder = n }
}

func gatherOptions(user ...Option) Options {
	var o Options
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
