package prometheus

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/iotaledger/migration-address/packages/metrics"
)

// PluginName is the name of the prometheus exporter plugin.
const PluginName = "Prometheus"

// Exporter serves the metrics of the node to prometheus.
type Exporter struct {
	params   *Parameters
	registry *prometheus.Registry
	collects []func()
	engine   *gin.Engine
	server   *http.Server
	log      *zap.SugaredLogger
}

// New creates an Exporter for the conversion metrics, the given collectors and the load of the given worker pools.
func New(params *Parameters, conversionMetrics *metrics.ConversionMetrics, collectors []prometheus.Collector, workerPools []WorkerPoolStatusProvider, log *zap.SugaredLogger) (*Exporter, error) {
	e := &Exporter{
		params:   params,
		registry: prometheus.NewRegistry(),
		log:      log.Named(PluginName),
	}

	if err := e.registry.Register(prometheus.NewGoCollector()); err != nil {
		return nil, errors.Errorf("failed to register go collector: %w", err)
	}
	if err := conversionMetrics.Register(e.registry); err != nil {
		return nil, err
	}
	for _, collector := range collectors {
		if err := e.registry.Register(collector); err != nil {
			return nil, errors.Errorf("failed to register collector: %w", err)
		}
	}
	e.registerInfoMetrics()
	e.registerProcessMetrics()
	e.registerWorkerpoolMetrics(workerPools)

	gin.SetMode(gin.ReleaseMode)
	e.engine = gin.New()
	e.engine.Use(gin.Recovery())

	handler := promhttp.HandlerFor(
		e.registry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		},
	)
	e.engine.GET("/metrics", func(c *gin.Context) {
		e.collect()
		handler.ServeHTTP(c.Writer, c.Request)
	})

	return e, nil
}

// ServeHTTP serves a single request.
func (e *Exporter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.engine.ServeHTTP(w, r)
}

// Run serves the metrics until ctx is done or the server fails.
func (e *Exporter) Run(ctx context.Context) {
	e.log.Info("Starting Prometheus exporter ...")
	e.server = &http.Server{Addr: e.params.BindAddress, Handler: e.engine}

	stopped := make(chan struct{})
	go func() {
		e.log.Infof("You can now access the Prometheus exporter using: http://%s/metrics", e.params.BindAddress)
		if err := e.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.log.Errorf("Stopping Prometheus exporter due to an error: %s", err)
		}
		close(stopped)
	}()

	select {
	case <-ctx.Done():
	case <-stopped:
	}

	e.log.Info("Stopping Prometheus exporter ...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.server.Shutdown(shutdownCtx); err != nil {
		e.log.Error(err.Error())
	}
	e.log.Info("Stopping Prometheus exporter ... done")
}

func (e *Exporter) addCollect(collect func()) {
	e.collects = append(e.collects, collect)
}

func (e *Exporter) collect() {
	for _, collect := range e.collects {
		collect()
	}
}
