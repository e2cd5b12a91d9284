package demo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodChain(t *testing.T) {
	c := NewFoodChain()
	head := c.Node("Monkey")
	require.NotNil(t, head)
	assert.Equal(t, []string{"Monkey", "Squirrel", "Dog"}, head.Path())

	result, ok := head.Handle("Nut")
	assert.True(t, ok)
	assert.Equal(t, "Squirrel: I'll eat the Nut.", result)

	result, ok = head.Handle("Meatball")
	assert.True(t, ok)
	assert.Equal(t, "Dog: I'll eat the Meatball.", result)

	_, ok = head.Handle("Coffee")
	assert.False(t, ok)
}

func TestFoodChainFromSquirrel(t *testing.T) {
	squirrel := NewFoodChain().Node("Squirrel")
	require.NotNil(t, squirrel)

	// the monkey is behind the entry node
	_, ok := squirrel.Handle("Banana")
	assert.False(t, ok)

	result, ok := squirrel.Handle("Nut")
	assert.True(t, ok)
	assert.Equal(t, "Squirrel: I'll eat the Nut.", result)
}

func TestRunChain(t *testing.T) {
	var buf bytes.Buffer
	RunChain(&buf)

	expected := `Chain: Monkey > Squirrel > Dog

Client: Who wants a Nut?
   Squirrel: I'll eat the Nut.
Client: Who wants a Banana?
   Monkey: I'll eat the Banana.
Client: Who wants a Cup of coffee?
   Cup of coffee was left untouched.

Chain: Squirrel > Dog

Client: Who wants a Nut?
   Squirrel: I'll eat the Nut.
Client: Who wants a Banana?
   Banana was left untouched.
Client: Who wants a Cup of coffee?
   Cup of coffee was left untouched.

`
	assert.Equal(t, expected, buf.String())
}
