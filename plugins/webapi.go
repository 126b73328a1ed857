package plugins

import (
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/iotaledger/migration-address/plugins/prometheus"
	"github.com/iotaledger/migration-address/plugins/webapi"
	"github.com/iotaledger/migration-address/plugins/webapi/healthz"
	webapimigration "github.com/iotaledger/migration-address/plugins/webapi/migration"
)

// WebAPI contains the constructors of the web API, its endpoints and the prometheus exporter of a node.
var WebAPI = []interface{}{
	webapi.ParametersFromConfig,
	webapi.New,
	healthz.New,
	webapimigration.ParametersFromConfig,
	webapimigration.New,
	prometheus.ParametersFromConfig,
	collectors,
	workerPools,
	prometheus.New,
}

func workerPools(endpoint *webapimigration.Endpoint) []prometheus.WorkerPoolStatusProvider {
	return []prometheus.WorkerPoolStatusProvider{endpoint}
}

func collectors(server *webapi.Server) []prom.Collector {
	return server.Collectors()
}
