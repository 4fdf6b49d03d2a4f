package monitoring

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osmesa-go/osmesa/pkg/logger"
)

type Config struct {
	Port             int
	URLPrefix        string
	MetricEnabled    bool `fig:"metric_enabled"`
	ProfilingEnabled bool `fig:"profiling_enabled"`
}

func (c *Config) IsEnabled() bool { return c.MetricEnabled || c.ProfilingEnabled }

// Monitoring is an HTTP server exposing Prometheus metrics and pprof
// profiles for long-running diagnostic modes.
type Monitoring struct {
	conf   Config
	log    *logger.Logger
	server *http.Server
}

// New creates new monitoring service.
// The tag param specifies owner label for logs.
func New(conf Config, tag string, log *logger.Logger) *Monitoring {
	h := http.NewServeMux()

	if conf.ProfilingEnabled {
		prefix := conf.URLPrefix + "/debug/pprof"
		log.Info().Msgf("[%v] profiling is enabled at :%d%s", tag, conf.Port, prefix)
		h.HandleFunc(prefix+"/", pprof.Index)
		h.HandleFunc(prefix+"/cmdline", pprof.Cmdline)
		h.HandleFunc(prefix+"/profile", pprof.Profile)
		h.HandleFunc(prefix+"/symbol", pprof.Symbol)
		h.HandleFunc(prefix+"/trace", pprof.Trace)
		for _, p := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
			h.Handle(prefix+"/"+p, pprof.Handler(p))
		}
	}

	if conf.MetricEnabled {
		metricPath := conf.URLPrefix + "/metrics"
		log.Info().Msgf("[%v] Prometheus metric is enabled at :%d%s", tag, conf.Port, metricPath)
		h.Handle(metricPath, promhttp.Handler())
	}

	return &Monitoring{
		conf: conf,
		log:  log,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", conf.Port),
			Handler:      h,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 120 * time.Second,
		},
	}
}

func (m *Monitoring) Run() {
	m.log.Info().Msgf("starting monitoring server at %v", m.server.Addr)
	go func() {
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			m.log.Error().Err(err).Msg("monitoring server failure")
		}
	}()
}

func (m *Monitoring) Shutdown(ctx context.Context) error {
	m.log.Info().Msg("shutting down monitoring server")
	return m.server.Shutdown(ctx)
}

func (m *Monitoring) String() string {
	return fmt.Sprintf("monitoring::%s:%d", m.conf.URLPrefix, m.conf.Port)
}
