// Package metrics keeps track of the conversions done by the node and exposes them as prometheus collectors.
package metrics

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/paulbellamy/ratecounter"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"

	"github.com/iotaledger/migration-address/packages/converter"
)

const (
	// OutcomeSuccess labels a conversion that produced an address.
	OutcomeSuccess = "success"
	// OutcomeParseError labels a conversion whose input was not an address at all.
	OutcomeParseError = "parse_error"
	// OutcomeInvalidFormat labels a conversion of a legacy address that is not a migration address.
	OutcomeInvalidFormat = "invalid_format"
	// OutcomeIntegrityMismatch labels a conversion of a migration address with a wrong hash prefix.
	OutcomeIntegrityMismatch = "integrity_mismatch"
	// OutcomeUnsupportedAddressType labels a conversion of a non Ed25519 address.
	OutcomeUnsupportedAddressType = "unsupported_address_type"
	// OutcomeInvalidChecksum labels a conversion of a legacy address with a wrong checksum.
	OutcomeInvalidChecksum = "invalid_checksum"
	// OutcomeAborted labels a conversion that was canceled before it ran.
	OutcomeAborted = "aborted"
	// OutcomeInternalError labels every other failure.
	OutcomeInternalError = "internal_error"
)

// region ConversionMetrics ////////////////////////////////////////////////////////////////////////////////////////////

// ConversionMetrics counts conversions by direction and outcome. It is safe for concurrent use.
type ConversionMetrics struct {
	successful *atomic.Uint64
	failed     *atomic.Uint64
	cacheHits  *atomic.Uint64
	lastMinute *ratecounter.RateCounter

	conversions      *prometheus.CounterVec
	duration         *prometheus.HistogramVec
	cacheHitsCounter prometheus.Counter
}

// NewConversionMetrics creates an empty ConversionMetrics.
func NewConversionMetrics() *ConversionMetrics {
	return &ConversionMetrics{
		successful: atomic.NewUint64(0),
		failed:     atomic.NewUint64(0),
		cacheHits:  atomic.NewUint64(0),
		lastMinute: ratecounter.NewRateCounter(time.Minute),

		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "migration_conversions_total",
				Help: "Number of address conversions by direction and outcome.",
			},
			[]string{"direction", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "migration_conversion_duration_seconds",
				Help:    "Time spent converting a single address.",
				Buckets: prometheus.ExponentialBuckets(0.000005, 4, 8),
			},
			[]string{"direction"},
		),
		cacheHitsCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "migration_cache_hits_total",
			Help: "Number of conversions answered from the cache.",
		}),
	}
}

// Register registers the collectors of the ConversionMetrics.
func (m *ConversionMetrics) Register(registerer prometheus.Registerer) error {
	for _, collector := range []prometheus.Collector{m.conversions, m.duration, m.cacheHitsCounter} {
		if err := registerer.Register(collector); err != nil {
			return errors.Errorf("failed to register conversion metrics: %w", err)
		}
	}

	return nil
}

// Observe records the outcome of a conversion that took elapsed.
func (m *ConversionMetrics) Observe(result converter.Result, elapsed time.Duration) {
	m.duration.WithLabelValues(string(result.Direction)).Observe(elapsed.Seconds())
	m.count(result)
}

// CacheHit records a conversion that was answered from the cache. Its duration is not observed.
func (m *ConversionMetrics) CacheHit(result converter.Result) {
	m.cacheHits.Inc()
	m.cacheHitsCounter.Inc()
	m.count(result)
}

// Successful returns the number of successful conversions.
func (m *ConversionMetrics) Successful() uint64 {
	return m.successful.Load()
}

// Failed returns the number of failed conversions.
func (m *ConversionMetrics) Failed() uint64 {
	return m.failed.Load()
}

// CacheHits returns the number of conversions answered from the cache.
func (m *ConversionMetrics) CacheHits() uint64 {
	return m.cacheHits.Load()
}

// ConversionsLastMinute returns the number of conversions observed during the last minute.
func (m *ConversionMetrics) ConversionsLastMinute() int64 {
	return m.lastMinute.Rate()
}

func (m *ConversionMetrics) count(result converter.Result) {
	m.conversions.WithLabelValues(string(result.Direction), Outcome(result.Err)).Inc()
	m.lastMinute.Incr(1)

	if result.Err != nil {
		m.failed.Inc()
		return
	}
	m.successful.Inc()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// Outcome returns the metric label of the conversion error err.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, converter.ErrParse):
		return OutcomeParseError
	case errors.Is(err, converter.ErrInvalidChecksum):
		return OutcomeInvalidChecksum
	case errors.Is(err, converter.ErrInvalidFormat):
		return OutcomeInvalidFormat
	case errors.Is(err, converter.ErrIntegrityMismatch):
		return OutcomeIntegrityMismatch
	case errors.Is(err, converter.ErrUnsupportedAddressType):
		return OutcomeUnsupportedAddressType
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeAborted
	default:
		return OutcomeInternalError
	}
}
