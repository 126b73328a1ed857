package plugins

import (
	"github.com/iotaledger/migration-address/packages/metrics"
	"github.com/iotaledger/migration-address/plugins/logger"
	"github.com/iotaledger/migration-address/plugins/migration"
)

// Core contains the constructors of the core components of a node. They expect the configuration in the
// container.
var Core = []interface{}{
	logger.NewLogger,
	migration.NewConverter,
	metrics.NewConversionMetrics,
}
