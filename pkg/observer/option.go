package observer

type options struct {
	dedup   bool
	recover bool
}

type Option func(*options)

// WithDedup makes Attach ignore an observer that is already attached.
func WithDedup() Option {
	return func(o *options) {
		o.dedup = true
	}
}

// WithRecover recovers panics raised by observers during Notify. The
// remaining observers are still notified and Notify returns the panics as
// errors of category xerror.Observer.
func WithRecover() Option {
	return func(o *options) {
		o.recover = true
	}
}
