// Package migration provides the web API endpoints that convert addresses.
package migration

import (
	"net/http"
	"strings"
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/cockroachdb/errors"
	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/iotaledger/migration-address/packages/converter"
	"github.com/iotaledger/migration-address/packages/jsonmodels"
	"github.com/iotaledger/migration-address/packages/metrics"
	"github.com/iotaledger/migration-address/plugins/webapi"
)

// PluginName is the name of the web API migration endpoint plugin.
const PluginName = "WebAPIMigrationEndpoint"

// Endpoint converts addresses for web API clients. Successful conversions are cached and pushed to the live
// feed.
type Endpoint struct {
	params    *Parameters
	converter *converter.Converter
	batch     *converter.BatchConverter
	cache     *ttlcache.Cache
	metrics   *metrics.ConversionMetrics
	feed      *LiveFeed
	log       *zap.SugaredLogger
}

// New creates the migration Endpoint.
func New(params *Parameters, c *converter.Converter, conversionMetrics *metrics.ConversionMetrics, log *zap.SugaredLogger) (*Endpoint, error) {
	cache := ttlcache.NewCache()
	if err := cache.SetTTL(params.CacheTTL); err != nil {
		return nil, errors.Errorf("failed to set cache TTL: %w", err)
	}
	cache.SetCacheSizeLimit(params.CacheSize)
	cache.SkipTTLExtensionOnHit(true)

	e := &Endpoint{
		params:    params,
		converter: c,
		cache:     cache,
		metrics:   conversionMetrics,
		log:       log.Named(PluginName),
	}
	e.feed = NewLiveFeed(e.log)

	batch, err := converter.NewBatchConverter(e.convert, params.WorkerCount)
	if err != nil {
		return nil, err
	}
	e.batch = batch

	return e, nil
}

// Register adds the migration routes to server.
func (e *Endpoint) Register(server *echo.Echo) {
	server.GET("/migration/legacy/:address", e.directedHandler(converter.ToLegacy))
	server.GET("/migration/modern/:address", e.directedHandler(converter.ToModern))
	server.GET("/migration/convert/:address", e.getConvert)
	server.POST("/migration/convert", e.postConvertBatch)
	server.GET("/migration/feed", e.feed.handle)
}

// CacheSize returns the number of cached conversions.
func (e *Endpoint) CacheSize() int {
	return e.cache.Count()
}

// WorkerPoolStatus returns the name and the number of busy workers of the batch worker pool.
func (e *Endpoint) WorkerPoolStatus() (name string, load int) {
	return "BatchConverter", e.batch.Running()
}

// Feed returns the live feed of the conversions.
func (e *Endpoint) Feed() *LiveFeed {
	return e.feed
}

// Shutdown disconnects the live feed clients and releases the workers and the cache.
func (e *Endpoint) Shutdown() {
	e.feed.Close()
	e.batch.Shutdown()
	if err := e.cache.Close(); err != nil {
		e.log.Errorw("Failed to close conversion cache", "err", err)
	}
}

func (e *Endpoint) directedHandler(direction converter.Direction) echo.HandlerFunc {
	return func(c echo.Context) error {
		return respond(c, e.convertTo(direction, c.Param("address")))
	}
}

func (e *Endpoint) getConvert(c echo.Context) error {
	return respond(c, e.convert(c.Param("address")))
}

func (e *Endpoint) postConvertBatch(c echo.Context) error {
	var request jsonmodels.ConvertBatchRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, jsonmodels.ConvertBatchResponse{Error: err.Error()})
	}

	switch {
	case len(request.Addresses) == 0:
		return c.JSON(http.StatusBadRequest, jsonmodels.ConvertBatchResponse{Error: ErrNoAddresses.Error()})
	case len(request.Addresses) > e.params.MaxBatchSize:
		err := errors.Errorf("%d addresses exceed the maximum of %d: %w", len(request.Addresses), e.params.MaxBatchSize, ErrBatchTooLarge)
		return c.JSON(http.StatusBadRequest, jsonmodels.ConvertBatchResponse{Error: err.Error()})
	}

	results := e.batch.ConvertBatch(c.Request().Context(), request.Addresses)

	response := jsonmodels.ConvertBatchResponse{Results: make([]jsonmodels.ConvertResult, len(results))}
	for i, result := range results {
		response.Results[i] = toConvertResult(result)
	}

	return c.JSON(http.StatusOK, response)
}

func (e *Endpoint) convert(input string) converter.Result {
	return e.convertTo(converter.DirectionOf(input), input)
}

func (e *Endpoint) convertTo(direction converter.Direction, input string) (result converter.Result) {
	defer func() {
		e.feed.Broadcast(toConvertResult(result))
	}()

	key := string(direction) + "/" + strings.TrimSpace(input)
	if cached, err := e.cache.Get(key); err == nil {
		result = cached.(converter.Result)
		result.Input = input
		e.metrics.CacheHit(result)

		return result
	}

	start := time.Now()
	result = e.converter.ConvertTo(direction, input)
	e.metrics.Observe(result, time.Since(start))

	if result.Err != nil {
		return result
	}
	if e.log.Desugar().Core().Enabled(zap.DebugLevel) {
		e.log.Debugw("Converted address", "direction", direction, "input", input,
			"address", result.Ed25519Address.String(), "base58", result.Ed25519Address.Base58())
	}
	if err := e.cache.Set(key, result); err != nil {
		e.log.Warnw("Failed to cache conversion", "input", input, "err", err)
	}

	return result
}

func respond(c echo.Context, result converter.Result) error {
	if result.Err != nil {
		return c.JSON(webapi.ConversionStatusCode(result.Err), jsonmodels.AddressResponse{
			Direction: string(result.Direction),
			Error:     result.Err.Error(),
		})
	}

	return c.JSON(http.StatusOK, jsonmodels.AddressResponse{
		Address:   result.Address,
		Direction: string(result.Direction),
	})
}

func toConvertResult(result converter.Result) jsonmodels.ConvertResult {
	convertResult := jsonmodels.ConvertResult{
		Input:     result.Input,
		Address:   result.Address,
		Direction: string(result.Direction),
	}
	if result.Err != nil {
		convertResult.Error = result.Err.Error()
	}

	return convertResult
}
