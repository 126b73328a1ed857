package info

import (
	"net/http"

	"github.com/labstack/echo"

	"github.com/iotaledger/migration-address/packages/converter"
	"github.com/iotaledger/migration-address/packages/jsonmodels"
	"github.com/iotaledger/migration-address/packages/metrics"
	"github.com/iotaledger/migration-address/plugins/banner"
)

// CacheSizer is implemented by endpoints that cache conversions.
type CacheSizer interface {
	CacheSize() int
}

// Register adds the info route to server.
func Register(server *echo.Echo, c *converter.Converter, conversionMetrics *metrics.ConversionMetrics, cache CacheSizer) {
	server.GET("/info", func(ctx echo.Context) error {
		return getInfo(ctx, c, conversionMetrics, cache)
	})
}

// getInfo returns the info of the node
// e.g.,
// {
// 	"version":"v0.1.0",
// 	"networkPrefix":"iota",
// 	"verifyChecksum":false,
// 	"successfulConversions":42,
// 	"failedConversions":3,
// 	"conversionsLastMinute":5,
// 	"cacheHits":12,
// 	"cacheSize":30
// }
func getInfo(ctx echo.Context, c *converter.Converter, conversionMetrics *metrics.ConversionMetrics, cache CacheSizer) error {
	return ctx.JSON(http.StatusOK, jsonmodels.InfoResponse{
		Version:               banner.AppVersion,
		NetworkPrefix:         string(c.NetworkPrefix()),
		VerifyChecksum:        c.VerifyChecksum(),
		SuccessfulConversions: conversionMetrics.Successful(),
		FailedConversions:     conversionMetrics.Failed(),
		ConversionsLastMinute: conversionMetrics.ConversionsLastMinute(),
		CacheHits:             conversionMetrics.CacheHits(),
		CacheSize:             cache.CacheSize(),
	})
}
