package utils

import (
	"github.com/modern-go/gls"
	"github.com/sirupsen/logrus"
)

// DemoField is the goroutine local key holding the name of the running demo.
const DemoField = "demo"

type Hook struct {
	Field  string
	levels []logrus.Level
}

func (hook *Hook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *Hook) Fire(entry *logrus.Entry) error {
	if value := gls.Get(hook.Field); value != nil {
		entry.Data[hook.Field] = value
	}
	return nil
}

func NewHook(levels ...logrus.Level) *Hook {
	hook := Hook{
		Field:  DemoField,
		levels: levels,
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}

	return &hook
}

// WithDemo runs fn with name stored under DemoField for the current goroutine,
// every log entry fired inside fn carries it.
func WithDemo(name string, fn func()) {
	gls.WithGls(func() {
		gls.Set(DemoField, name)
		fn()
	})()
}
