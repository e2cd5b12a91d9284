package observer

// Observer receives the subject state on every notification.
//
// Detach and WithDedup find an observer with ==, so implementations should
// be comparable, usually a pointer. An observer of an uncomparable type (a
// struct value holding a func, map or slice) can be attached and notified
// but never matches: Detach leaves it attached and WithDedup lets it in twice.
type Observer[T any] interface {
	Update(T)
}

type Subject[T any] interface {
	Attach(Observer[T])
	Detach(Observer[T])
	Notify() error
}

// Func adapts a closure to an Observer. Always use it through the pointer
// returned by NewFunc: the pointer is the identity Detach compares against.
type Func[T any] struct {
	fn func(T)
}

func NewFunc[T any](fn func(T)) *Func[T] {
	return &Func[T]{fn: fn}
}

func (f *Func[T]) Update(state T) {
	f.fn(state)
}
