package observer

import (
	"reflect"

	"github.com/selectdb/patterns/pkg/xerror"
	"github.com/selectdb/patterns/pkg/xmetrics"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/exp/slices"
)

var _ Subject[int] = (*StateSubject[int])(nil)

// StateSubject owns a state of type S and notifies its observers, in
// attachment order, every time the state is set.
//
// StateSubject does no locking. Callers sharing it between goroutines must
// serialise Attach, Detach, Notify and SetState themselves.
type StateSubject[S any] struct {
	state     S
	observers []Observer[S]
	opts      options
}

func NewSubject[S any](initial S, opts ...Option) *StateSubject[S] {
	s := &StateSubject[S]{state: initial}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

func (s *StateSubject[S]) State() S {
	return s.state
}

func (s *StateSubject[S]) Len() int {
	return len(s.observers)
}

// impl Subject[S]
func (s *StateSubject[S]) Attach(observer Observer[S]) {
	if s.opts.dedup && s.index(observer) >= 0 {
		log.Debugf("observer %v already attached", observer)
		return
	}

	log.Debugf("attach observer %v", observer)
	s.observers = append(s.observers, observer)
	xmetrics.ObserverAttached()
}

// Detach removes the first attachment of observer, if any.
func (s *StateSubject[S]) Detach(observer Observer[S]) {
	i := s.index(observer)
	if i < 0 {
		return
	}

	log.Debugf("detach observer %v", observer)
	// a fresh slice, a Notify in progress keeps iterating its own snapshot
	s.observers = slices.Delete(slices.Clone(s.observers), i, i+1)
	xmetrics.ObserverDetached()
}

// index returns the position of the first attachment of observer, or -1.
// An observer whose dynamic type is not comparable matches nothing.
func (s *StateSubject[S]) index(observer Observer[S]) int {
	typ := reflect.TypeOf(observer)
	if typ == nil || !typ.Comparable() {
		return -1
	}

	return slices.IndexFunc(s.observers, func(o Observer[S]) bool {
		return reflect.TypeOf(o) == typ && o == observer
	})
}

func (s *StateSubject[S]) Clear() {
	log.Debugf("detach all %d observers", len(s.observers))
	s.observers = nil
}

// Notify calls Update with the current state on every observer attached when
// Notify starts. Observers attached or detached by an Update take part from
// the next Notify on.
func (s *StateSubject[S]) Notify() error {
	snapshot := s.observers
	state := s.state
	log.Debugf("notify %d observers, state: %v", len(snapshot), state)
	xmetrics.SubjectNotified(len(snapshot))

	var errs error
	for i, o := range snapshot {
		if err := s.update(o, state); err != nil {
			log.Warnf("observer %d %v failed: %+v", i, o, err)
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// SetState assigns state and then notifies the observers, so they always see
// the new state.
func (s *StateSubject[S]) SetState(state S) error {
	log.Debugf("state changed from %v to %v", s.state, state)
	s.state = state
	return s.Notify()
}

func (s *StateSubject[S]) update(o Observer[S], state S) (err error) {
	if s.opts.recover {
		defer func() {
			if r := recover(); r != nil {
				err = xerror.Panicf(xerror.Observer, "observer %v panicked: %v", o, r)
				xmetrics.AddError(xerror.As(err))
			}
		}()
	}

	o.Update(state)
	return nil
}
