package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iotaledger/migration-address/plugins/banner"
)

func (e *Exporter) registerInfoMetrics() {
	infoApp := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "migration_info_app",
			Help: "Node software name and version.",
		},
		[]string{"name", "version"},
	)
	infoApp.WithLabelValues(banner.AppName, banner.AppVersion).Set(1)

	e.registry.MustRegister(infoApp)
}
