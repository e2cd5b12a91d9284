package chain

import (
	"github.com/selectdb/patterns/pkg/xerror"
	"github.com/selectdb/patterns/pkg/xmetrics"

	log "github.com/sirupsen/logrus"
)

const noNext = -1

type record[Req, Res any] struct {
	name    string
	handler Handler[Req, Res]
	next    int // index of the successor in Chain.records, noNext at the tail
}

// Chain is the arena owning the handler records. Links between handlers are
// indexes into the arena, so the records never reference each other.
//
// Chain is not safe for concurrent use, the topology must not change while a
// request is being dispatched.
type Chain[Req, Res any] struct {
	records []record[Req, Res]
}

func New[Req, Res any]() *Chain[Req, Res] {
	return &Chain[Req, Res]{}
}

// Add registers handler as a new, unlinked node of the chain.
func (c *Chain[Req, Res]) Add(name string, handler Handler[Req, Res]) *Node[Req, Res] {
	if handler == nil {
		log.Panicf("handler %s is nil", name)
	}

	c.records = append(c.records, record[Req, Res]{
		name:    name,
		handler: handler,
		next:    noNext,
	})
	log.Debugf("add handler %s to chain, index: %d", name, len(c.records)-1)

	return c.node(len(c.records) - 1)
}

func (c *Chain[Req, Res]) Len() int {
	return len(c.records)
}

// Node returns the first node registered under name, or nil.
func (c *Chain[Req, Res]) Node(name string) *Node[Req, Res] {
	for i := range c.records {
		if c.records[i].name == name {
			return c.node(i)
		}
	}
	return nil
}

func (c *Chain[Req, Res]) node(index int) *Node[Req, Res] {
	if index == noNext {
		return nil
	}
	return &Node[Req, Res]{chain: c, index: index}
}

// reaches reports whether walking forward from `from` visits `to`.
func (c *Chain[Req, Res]) reaches(from, to int) bool {
	for i := from; i != noNext; i = c.records[i].next {
		if i == to {
			return true
		}
	}
	return false
}

// Node is a handle on one record of a Chain. Nodes are cheap values, two nodes
// with the same chain and index refer to the same handler.
type Node[Req, Res any] struct {
	chain *Chain[Req, Res]
	index int
}

func (n *Node[Req, Res]) Name() string {
	return n.record().name
}

// Next returns the successor, or nil at the tail.
func (n *Node[Req, Res]) Next() *Node[Req, Res] {
	return n.chain.node(n.record().next)
}

// Path lists the handler names from n to the tail.
func (n *Node[Req, Res]) Path() []string {
	var names []string
	for i := n.index; i != noNext; i = n.chain.records[i].next {
		names = append(names, n.chain.records[i].name)
	}
	return names
}

// SetNext links next as the successor of n and returns next, so that
// a.SetNext(b).SetNext(c) builds a > b > c. A nil next makes n the tail.
// It panics when the link would break the chain, use TrySetNext to get the
// error instead.
func (n *Node[Req, Res]) SetNext(next *Node[Req, Res]) *Node[Req, Res] {
	next, err := n.TrySetNext(next)
	if err != nil {
		log.Panicf("set next failed: %+v", err)
	}
	return next
}

// TrySetNext is SetNext reporting a link to another chain's node or a link
// that would form a cycle as an error. The chain is unchanged on error.
func (n *Node[Req, Res]) TrySetNext(next *Node[Req, Res]) (*Node[Req, Res], error) {
	if next == nil {
		log.Debugf("clear next of handler %s", n.Name())
		n.record().next = noNext
		return nil, nil
	}

	if next.chain != n.chain {
		return nil, xerror.Errorf(xerror.Chain, "handler %s belongs to another chain", next.Name())
	}
	if n.chain.reaches(next.index, n.index) {
		return nil, xerror.Errorf(xerror.Chain, "link %s > %s forms a cycle", n.Name(), next.Name())
	}

	log.Debugf("link handler %s > %s", n.Name(), next.Name())
	n.record().next = next.index
	return next, nil
}

// Handle dispatches request from n towards the tail. The first handler whose
// CanHandle accepts the request produces the result and ends the walk,
// handlers after it are never consulted. ok is false when no handler
// accepted the request, which is not an error.
func (n *Node[Req, Res]) Handle(request Req) (result Res, ok bool) {
	records := n.chain.records
	for i := n.index; i != noNext; i = records[i].next {
		r := &records[i]
		if !r.handler.CanHandle(request) {
			continue
		}

		log.Tracef("handler %s handles request %v", r.name, request)
		xmetrics.ChainHandled(r.name)
		return r.handler.Handle(request), true
	}

	log.Tracef("request %v is unhandled from handler %s", request, n.Name())
	xmetrics.ChainUnhandled()
	return result, false
}

func (n *Node[Req, Res]) record() *record[Req, Res] {
	return &n.chain.records[n.index]
}
