package migration

import (
	"time"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// CfgCacheTTL defines the config flag of the time a conversion stays cached.
	CfgCacheTTL = "webapi.cacheTTL"
	// CfgCacheSize defines the config flag of the maximum number of cached conversions.
	CfgCacheSize = "webapi.cacheSize"
	// CfgWorkerCount defines the config flag of the number of workers converting batches.
	CfgWorkerCount = "webapi.workerCount"
	// CfgMaxBatchSize defines the config flag of the maximum number of addresses in a batch request.
	CfgMaxBatchSize = "webapi.maxBatchSize"
)

func init() {
	flag.Duration(CfgCacheTTL, 10*time.Minute, "the time a conversion stays cached")
	flag.Int(CfgCacheSize, 10000, "the maximum number of cached conversions")
	flag.Int(CfgWorkerCount, 32, "the number of workers converting batches")
	flag.Int(CfgMaxBatchSize, 1000, "the maximum number of addresses in a batch request")
}

// Parameters contains the configuration of the migration endpoints.
type Parameters struct {
	CacheTTL     time.Duration
	CacheSize    int
	WorkerCount  int
	MaxBatchSize int
}

// ParametersFromConfig reads the migration endpoint parameters from config.
func ParametersFromConfig(config *viper.Viper) *Parameters {
	return &Parameters{
		CacheTTL:     config.GetDuration(CfgCacheTTL),
		CacheSize:    config.GetInt(CfgCacheSize),
		WorkerCount:  config.GetInt(CfgWorkerCount),
		MaxBatchSize: config.GetInt(CfgMaxBatchSize),
	}
}
