package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/selectdb/patterns/pkg/demo"
	"github.com/selectdb/patterns/pkg/utils"
	"github.com/selectdb/patterns/pkg/version"
	"github.com/selectdb/patterns/pkg/xerror"
	"github.com/selectdb/patterns/pkg/xmetrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	demoName    string
	seed        int64
	metricsAddr string
	showVersion bool
)

func init() {
	flag.BoolVar(&showVersion, "version", false, "The program's version")

	flag.StringVar(&demoName, "demo", "all", "demo to run: chain, observer or all")
	flag.Int64Var(&seed, "seed", 0, "seed of the observer demo state changes, 0 for time based")
	flag.StringVar(&metricsAddr, "metrics_addr", "", "serve prometheus metrics on this address and wait for a signal")
}

func main() {
	flag.Parse()
	utils.InitLog()

	if showVersion {
		fmt.Println(version.GetVersion())
		os.Exit(0)
	}

	log.Infof("patterns start, version: %s", version.GetVersion())

	// Step 1: init metrics
	if err := xmetrics.InitGlobal("patterns"); err != nil {
		log.Fatalf("init metrics failed: %+v", err)
	}

	// Step 2: run demos
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := run(os.Stdout, demoName, seed); err != nil {
		log.Fatalf("run demo %s failed: %+v", demoName, err)
	}

	if metricsAddr == "" {
		return
	}

	// Step 3: serve metrics until signaled
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(metricsAddr, nil); err != nil {
			log.Fatalf("metrics service start error: %+v", err)
		}
	}()
	log.Infof("serving metrics on %s", metricsAddr)

	mux := NewSignalMux(func(sig os.Signal) bool {
		return sig != syscall.SIGHUP
	})
	defer mux.Stop()
	mux.Serve()
}

func run(w io.Writer, name string, seed int64) error {
	switch name {
	case "chain":
		runChain(w)
	case "observer":
		return runObserver(w, seed)
	case "all":
		runChain(w)
		return runObserver(w, seed)
	default:
		return xerror.Errorf(xerror.Normal, "unknown demo: %s", name)
	}
	return nil
}

func runChain(w io.Writer) {
	utils.WithDemo("chain", func() {
		log.Debug("run chain of responsibility demo")
		demo.RunChain(w)
	})
}

func runObserver(w io.Writer, seed int64) error {
	var err error
	utils.WithDemo("observer", func() {
		log.Debugf("run observer demo, seed: %d", seed)
		err = demo.RunObserver(w, rand.New(rand.NewSource(seed)))
	})
	return err
}
