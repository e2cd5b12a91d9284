package chain

// Handler is one link of a chain of responsibility. It decides locally whether
// it accepts a request, the chain takes care of forwarding.
type Handler[Req, Res any] interface {
	// CanHandle must not have side effects, it may be called on every
	// dispatch that reaches the handler.
	CanHandle(request Req) bool
	// Handle is only called after CanHandle returned true for the same request.
	Handle(request Req) Res
}

// HandlerFunc adapts a pair of plain functions to a Handler.
type HandlerFunc[Req, Res any] struct {
	Accept func(request Req) bool
	Serve  func(request Req) Res
}

func (f HandlerFunc[Req, Res]) CanHandle(request Req) bool {
	return f.Accept(request)
}

func (f HandlerFunc[Req, Res]) Handle(request Req) Res {
	return f.Serve(request)
}
