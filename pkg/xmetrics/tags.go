package xmetrics

import "github.com/selectdb/patterns/pkg/xerror"

type IMetricsTag interface {
	Tag() []string
}

type metricsTag struct {
	tags []string
}

// chain metrics
type chainMetrics struct {
	metricsTag
	name string
}

// ChainMetrics builds tags for the handler named name, or for the chain as a
// whole when name is empty.
func ChainMetrics(name string) *chainMetrics {
	return &chainMetrics{
		metricsTag: metricsTag{[]string{"chain"}},
		name:       name,
	}
}

func (c *chainMetrics) Tag() []string {
	if c.name == "" {
		return c.tags
	}
	return append([]string{c.tags[0], c.name}, c.tags[1:]...)
}

func (c *chainMetrics) Handled() IMetricsTag {
	c.tags = append(c.tags, "handled")
	return c
}

func (c *chainMetrics) Unhandled() IMetricsTag {
	c.tags = append(c.tags, "unhandled")
	return c
}

// observer metrics
type observerMetrics struct {
	metricsTag
}

func ObserverMetrics() *observerMetrics {
	return &observerMetrics{
		metricsTag: metricsTag{[]string{"observer"}},
	}
}

func (o *observerMetrics) Tag() []string {
	return o.tags
}

func (o *observerMetrics) Attached() IMetricsTag {
	o.tags = append(o.tags, "attached")
	return o
}

func (o *observerMetrics) Detached() IMetricsTag {
	o.tags = append(o.tags, "detached")
	return o
}

func (o *observerMetrics) Notified() IMetricsTag {
	o.tags = append(o.tags, "notified")
	return o
}

func (o *observerMetrics) Updated() IMetricsTag {
	o.tags = append(o.tags, "updated")
	return o
}

// error metrics
type errorMetrics struct {
	metricsTag
}

func ErrorMetrics(err *xerror.XError) IMetricsTag {
	errMetrics := &errorMetrics{
		metricsTag: metricsTag{[]string{"error", err.Category().Name()}},
	}

	if err.IsRecoverable() {
		errMetrics.tags = append(errMetrics.tags, "recoverable")
	} else if err.IsPanic() {
		errMetrics.tags = append(errMetrics.tags, "panic")
	} else {
		errMetrics.tags = append(errMetrics.tags, "unknown")
	}

	return errMetrics
}

func (e *errorMetrics) Tag() []string {
	return e.tags
}
