package demo

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/selectdb/patterns/pkg/observer"

	log "github.com/sirupsen/logrus"
)

// Threshold reacts to the states accepted by Match.
type Threshold struct {
	Name  string
	Match func(state int) bool
	w     io.Writer
}

func (t *Threshold) Update(state int) {
	if t.Match(state) {
		fmt.Fprintf(t.w, "%s: Reacted to the event.\n", t.Name)
	}
}

func (t *Threshold) String() string {
	return t.Name
}

func NewLessThan3(w io.Writer) *Threshold {
	return &Threshold{
		Name:  "LessThan3",
		Match: func(state int) bool { return state < 3 },
		w:     w,
	}
}

func NewGteOrZero(w io.Writer) *Threshold {
	return &Threshold{
		Name:  "GteOrZero",
		Match: func(state int) bool { return state == 0 || state >= 2 },
		w:     w,
	}
}

// SomeStateChange moves the subject to a random state in [0, 10).
func SomeStateChange(w io.Writer, subject *observer.StateSubject[int], rnd *rand.Rand) error {
	fmt.Fprintln(w, "Subject: I'm doing something important.")
	state := rnd.Intn(10)
	fmt.Fprintf(w, "Subject: My state has just changed to: %d\n", state)
	fmt.Fprintln(w, "Subject: Notifying observers...")
	return subject.SetState(state)
}

func RunObserver(w io.Writer, rnd *rand.Rand) error {
	subject := observer.NewSubject(0)
	lessThan3 := NewLessThan3(w)
	gteOrZero := NewGteOrZero(w)

	for _, o := range []*Threshold{lessThan3, gteOrZero} {
		subject.Attach(o)
		fmt.Fprintln(w, "Subject: Attached an observer.")
	}

	for i := 0; i < 2; i++ {
		if err := SomeStateChange(w, subject, rnd); err != nil {
			return err
		}
	}

	subject.Detach(gteOrZero)
	fmt.Fprintln(w, "Subject: Detached an observer.")
	log.Infof("detached %s, %d observers left", gteOrZero, subject.Len())

	return SomeStateChange(w, subject, rnd)
}
