package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/lixenwraith/crankspin/core"
	"github.com/lixenwraith/crankspin/status"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newMetricsHandler serves the device registry plus Go runtime metrics
func newMetricsHandler(reg *status.Registry, namespace string) http.Handler {
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		status.NewCollector(reg, namespace),
		collectors.NewGoCollector(),
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
	return mux
}

// metricsService exposes /metrics on addr
type metricsService struct {
	addr    string
	handler http.Handler
	srv     *http.Server
	ln      net.Listener
}

func newMetricsService(addr string, handler http.Handler) *metricsService {
	return &metricsService{addr: addr, handler: handler}
}

func (m *metricsService) Name() string { return "metrics" }

func (m *metricsService) Dependencies() []string { return nil }

// Start binds synchronously so a busy port fails startup
func (m *metricsService) Start() error {
	ln, err := net.Listen("tcp", m.addr)
	if err != nil {
		return err
	}
	m.ln = ln
	m.srv = &http.Server{Handler: m.handler, ReadHeaderTimeout: 5 * time.Second}

	srv := m.srv
	core.Go(func() {
		log.Printf("metrics: listening on %s", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics: %v", err)
		}
	})
	return nil
}

func (m *metricsService) Stop() error {
	if m.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := m.srv.Shutdown(ctx)
	m.srv = nil
	return err
}
