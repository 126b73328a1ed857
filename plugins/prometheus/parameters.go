package prometheus

import (
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// CfgPrometheusEnabled defines the config flag that enables the prometheus exporter.
	CfgPrometheusEnabled = "prometheus.enabled"
	// CfgPrometheusBindAddress defines the config flag of the prometheus exporter binding address.
	CfgPrometheusBindAddress = "prometheus.bindAddress"
)

func init() {
	flag.Bool(CfgPrometheusEnabled, true, "whether to serve the prometheus metrics")
	flag.String(CfgPrometheusBindAddress, "127.0.0.1:9311", "the bind address of the prometheus exporter")
}

// Parameters contains the configuration of the prometheus exporter.
type Parameters struct {
	Enabled     bool
	BindAddress string
}

// ParametersFromConfig reads the prometheus exporter parameters from config.
func ParametersFromConfig(config *viper.Viper) *Parameters {
	return &Parameters{
		Enabled:     config.GetBool(CfgPrometheusEnabled),
		BindAddress: config.GetString(CfgPrometheusBindAddress),
	}
}
