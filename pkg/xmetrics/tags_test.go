package xmetrics

import (
	"testing"

	"github.com/selectdb/patterns/pkg/xerror"
	"github.com/stretchr/testify/assert"
)

func TestChainTags(t *testing.T) {
	assert.Equal(t, []string{"chain", "Monkey", "handled"}, ChainMetrics("Monkey").Handled().Tag())
	assert.Equal(t, []string{"chain", "unhandled"}, ChainMetrics("").Unhandled().Tag())
}

func TestObserverTags(t *testing.T) {
	assert.Equal(t, []string{"observer", "attached"}, ObserverMetrics().Attached().Tag())
	assert.Equal(t, []string{"observer", "detached"}, ObserverMetrics().Detached().Tag())
	assert.Equal(t, []string{"observer", "notified"}, ObserverMetrics().Notified().Tag())
	assert.Equal(t, []string{"observer", "updated"}, ObserverMetrics().Updated().Tag())
}

func TestErrorTags(t *testing.T) {
	recoverable := xerror.NewWithoutStack(xerror.Chain, "cycle")
	assert.Equal(t, []string{"error", "chain", "recoverable"}, ErrorMetrics(recoverable).Tag())

	panicked := xerror.PanicWithoutStack(xerror.Observer, "boom")
	assert.Equal(t, []string{"error", "observer", "panic"}, ErrorMetrics(panicked).Tag())
}
