package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

// WorkerPoolStatusProvider is implemented by components running a worker pool.
type WorkerPoolStatusProvider interface {
	// WorkerPoolStatus returns the name of the pool and the number of busy workers.
	WorkerPoolStatus() (name string, load int)
}

func (e *Exporter) registerWorkerpoolMetrics(workerPools []WorkerPoolStatusProvider) {
	workerpools := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "workerpools_load",
			Help: "Info about workerpools load",
		},
		[]string{
			"name",
		},
	)

	e.registry.MustRegister(workerpools)

	e.addCollect(func() {
		for _, workerPool := range workerPools {
			name, load := workerPool.WorkerPoolStatus()
			workerpools.WithLabelValues(
				name,
			).Set(float64(load))
		}
	})
}
