package main

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

type SignalMux struct {
	sigChan chan os.Signal
	handler func(os.Signal) bool
}

func NewSignalMux(handler func(os.Signal) bool) *SignalMux {
	if handler == nil {
		log.Panic("signal handler is nil")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)

	return &SignalMux{
		sigChan: sigChan,
		handler: handler,
	}
}

// Serve blocks until handler returns true for a received signal, and returns
// that signal.
func (s *SignalMux) Serve() os.Signal {
	for sig := range s.sigChan {
		log.Infof("receive signal: %s", sig.String())

		if s.handler(sig) {
			return sig
		}
		log.Debugf("signal %s ignored", sig.String())
	}
	return nil
}

// Stop stops relaying process signals to the mux.
func (s *SignalMux) Stop() {
	signal.Stop(s.sigChan)
}
