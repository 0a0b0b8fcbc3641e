package book

// Option configures a new OrderBook. Every tunable here is a
// library-internal knob passed in code, never parsed from a config
// file — there is no process boundary for a config file to live
// outside of.
type Option func(*bookConfig)

type bookConfig struct {
	nodeBlockSize      int
	orderIndexCapacity int
}

func defaultConfig() bookConfig {
	return bookConfig{
		nodeBlockSize:      defaultBlockSize,
		orderIndexCapacity: 0,
	}
}

// WithNodeBlockSize overrides the node arena's block size. Larger
// blocks amortize allocation further at the cost of worse-case wasted
// memory when a book stays thin.
func WithNodeBlockSize(size int) Option {
	return func(c *bookConfig) {
		if size > 0 {
			c.nodeBlockSize = size
		}
	}
}

// WithOrderIndexCapacityHint pre-sizes the order-id lookup map to
// avoid rehashing during warm-up.
func WithOrderIndexCapacityHint(n int) Option {
	return func(c *bookConfig) {
		if n > 0 {
			c.orderIndexCapacity = n
		}
	}
}
