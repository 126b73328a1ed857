package webapi

import (
	"time"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iotaledger/migration-address/packages/ratelimiter"
)

const (
	// CfgBindAddress defines the config flag of the web API binding address.
	CfgBindAddress = "webapi.bindAddress"
	// CfgBasicAuthEnabled defines the config flag that enables basic auth for the web API.
	CfgBasicAuthEnabled = "webapi.basicAuth.enabled"
	// CfgBasicAuthUsername defines the config flag of the basic auth username.
	CfgBasicAuthUsername = "webapi.basicAuth.username"
	// CfgBasicAuthPassword defines the config flag of the basic auth password.
	CfgBasicAuthPassword = "webapi.basicAuth.password"
	// CfgRateLimitLimit defines the config flag of the number of requests a client may send per interval.
	CfgRateLimitLimit = "webapi.rateLimit.limit"
	// CfgRateLimitInterval defines the config flag of the rate limit interval.
	CfgRateLimitInterval = "webapi.rateLimit.interval"
)

func init() {
	flag.String(CfgBindAddress, "127.0.0.1:8080", "the bind address for the web API")
	flag.Bool(CfgBasicAuthEnabled, false, "whether to enable HTTP basic auth for the web API")
	flag.String(CfgBasicAuthUsername, "", "HTTP basic auth username")
	flag.String(CfgBasicAuthPassword, "", "HTTP basic auth password")
	flag.Int(CfgRateLimitLimit, 0, "the number of requests a client may send per interval, 0 disables the limit")
	flag.Duration(CfgRateLimitInterval, time.Minute, "the interval of the request limit")
}

// Parameters contains the configuration of the web API server.
type Parameters struct {
	BindAddress string
	BasicAuth   BasicAuth
	RateLimit   ratelimiter.RateLimit
}

// BasicAuth contains the HTTP basic auth credentials of the web API.
type BasicAuth struct {
	Enabled  bool
	Username string
	Password string
}

// ParametersFromConfig reads the web API parameters from config.
func ParametersFromConfig(config *viper.Viper) *Parameters {
	return &Parameters{
		BindAddress: config.GetString(CfgBindAddress),
		BasicAuth: BasicAuth{
			Enabled:  config.GetBool(CfgBasicAuthEnabled),
			Username: config.GetString(CfgBasicAuthUsername),
			Password: config.GetString(CfgBasicAuthPassword),
		},
		RateLimit: ratelimiter.RateLimit{
			Interval: config.GetDuration(CfgRateLimitInterval),
			Limit:    config.GetInt(CfgRateLimitLimit),
		},
	}
}
