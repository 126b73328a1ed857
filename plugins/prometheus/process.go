package prometheus

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/cpu"
)

func (e *Exporter) registerProcessMetrics() {
	cpuUsage := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "process_cpu_usage",
		Help: "CPU (System) usage.",
	})
	memUsageBytes := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "process_mem_usage_bytes",
		Help: "memory usage [bytes].",
	})

	e.registry.MustRegister(cpuUsage)
	e.registry.MustRegister(memUsageBytes)

	e.addCollect(func() {
		// usage since the previous scrape
		if percent, err := cpu.Percent(0, false); err == nil && len(percent) > 0 {
			cpuUsage.Set(percent[0])
		}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		memUsageBytes.Set(float64(m.Alloc))
	})
}
