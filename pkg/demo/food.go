package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/selectdb/patterns/pkg/chain"
)

// Eater accepts exactly one food.
type Eater struct {
	Animal string
	Food   string
}

var (
	Monkey   = Eater{Animal: "Monkey", Food: "Banana"}
	Squirrel = Eater{Animal: "Squirrel", Food: "Nut"}
	Dog      = Eater{Animal: "Dog", Food: "Meatball"}
)

var _ chain.Handler[string, string] = Eater{}

func (e Eater) CanHandle(food string) bool {
	return food == e.Food
}

func (e Eater) Handle(food string) string {
	return fmt.Sprintf("%s: I'll eat the %s.", e.Animal, food)
}

// NewFoodChain builds Monkey > Squirrel > Dog, each node named after its animal.
func NewFoodChain() *chain.Chain[string, string] {
	c := chain.New[string, string]()
	c.Add(Monkey.Animal, Monkey).
		SetNext(c.Add(Squirrel.Animal, Squirrel)).
		SetNext(c.Add(Dog.Animal, Dog))
	return c
}

// ServeFood offers every food to the chain starting at entry. The entry node
// does not need to be the head.
func ServeFood(w io.Writer, entry *chain.Node[string, string], foods []string) {
	for _, food := range foods {
		fmt.Fprintf(w, "Client: Who wants a %s?\n", food)

		if result, ok := entry.Handle(food); ok {
			fmt.Fprintf(w, "   %s\n", result)
		} else {
			fmt.Fprintf(w, "   %s was left untouched.\n", food)
		}
	}
}

func RunChain(w io.Writer) {
	foods := []string{"Nut", "Banana", "Cup of coffee"}
	c := NewFoodChain()

	for _, entry := range []*chain.Node[string, string]{c.Node(Monkey.Animal), c.Node(Squirrel.Animal)} {
		fmt.Fprintf(w, "Chain: %s\n\n", strings.Join(entry.Path(), " > "))
		ServeFood(w, entry, foods)
		fmt.Fprintln(w)
	}
}
