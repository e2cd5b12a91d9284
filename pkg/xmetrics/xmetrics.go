package xmetrics

import (
	"time"

	"github.com/hashicorp/go-metrics"
	"github.com/hashicorp/go-metrics/prometheus"
	"github.com/selectdb/patterns/pkg/xerror"
)

func InitGlobal(serviceName string) error {
	sink, err := prometheus.NewPrometheusSink()
	if err != nil {
		return xerror.Wrap(err, xerror.Normal, "init prometheus sink failed")
	}

	if _, err := metrics.NewGlobal(newConfig(serviceName), sink); err != nil {
		return xerror.Wrap(err, xerror.Normal, "new global metrics failed")
	}

	return nil
}

// InitInmem installs an in-memory sink as the global sink and returns it, tests
// read counters back from it.
func InitInmem(serviceName string) (*metrics.InmemSink, error) {
	sink := metrics.NewInmemSink(10*time.Second, time.Minute)
	if _, err := metrics.NewGlobal(newConfig(serviceName), sink); err != nil {
		return nil, xerror.Wrap(err, xerror.Normal, "new global metrics failed")
	}
	return sink, nil
}

func newConfig(serviceName string) *metrics.Config {
	conf := metrics.DefaultConfig(serviceName)
	conf.EnableHostname = false
	conf.EnableRuntimeMetrics = false
	return conf
}

func AddError(err *xerror.XError) {
	metrics.IncrCounter(ErrorMetrics(err).Tag(), 1)
}

func ChainHandled(name string) {
	metrics.IncrCounter(ChainMetrics(name).Handled().Tag(), 1)
}

func ChainUnhandled() {
	metrics.IncrCounter(ChainMetrics("").Unhandled().Tag(), 1)
}

func ObserverAttached() {
	metrics.IncrCounter(ObserverMetrics().Attached().Tag(), 1)
}

func ObserverDetached() {
	metrics.IncrCounter(ObserverMetrics().Detached().Tag(), 1)
}

func SubjectNotified(observerNum int) {
	metrics.IncrCounter(ObserverMetrics().Notified().Tag(), 1)
	metrics.IncrCounter(ObserverMetrics().Updated().Tag(), float32(observerNum))
}
