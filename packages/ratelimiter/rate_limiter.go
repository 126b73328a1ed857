package ratelimiter

import (
	"fmt"
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/events"
	"github.com/paulbellamy/ratecounter"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// RateLimit is the maximum number of requests a client may send per interval.
type RateLimit struct {
	Interval time.Duration
	Limit    int
}

func (rl RateLimit) String() string {
	return fmt.Sprintf("%d per %s", rl.Limit, rl.Interval)
}

// ClientRateLimiter counts the requests of every client and reports the clients that exceed the limit. A limit
// of zero or less disables the limiter.
type ClientRateLimiter struct {
	interval       time.Duration
	limit          int
	hitEvent       *events.Event
	clientsRecords *ttlcache.Cache
	log            *zap.SugaredLogger
}

// NewClientRateLimiter creates a ClientRateLimiter that allows limit requests per interval and client.
func NewClientRateLimiter(interval time.Duration, limit int, log *zap.SugaredLogger) (*ClientRateLimiter, error) {
	if interval <= 0 {
		return nil, errors.Errorf("rate limit interval must be positive, got %s", interval)
	}

	records := ttlcache.NewCache()
	records.SetLoaderFunction(func(_ string) (interface{}, time.Duration, error) {
		record := &limiterRecord{counter: ratecounter.NewRateCounter(interval), limitHitReported: atomic.NewBool(false)}
		return record, ttlcache.ItemExpireWithGlobalTTL, nil
	})
	if err := records.SetTTL(interval); err != nil {
		return nil, errors.WithStack(err)
	}

	return &ClientRateLimiter{
		interval:       interval,
		limit:          limit,
		hitEvent:       events.NewEvent(limitHitCaller),
		clientsRecords: records,
		log:            log,
	}, nil
}

type limiterRecord struct {
	counter          *ratecounter.RateCounter
	limitHitReported *atomic.Bool
}

// Count records a request of the client identified by key and returns false if the client exceeded the limit.
func (crl *ClientRateLimiter) Count(key string) bool {
	allowed, err := crl.doCount(key)
	if err != nil {
		crl.log.Warnw("Rate limiter failed to count client activity",
			"client", key, "err", err)
		return true
	}

	return allowed
}

// Limit returns the current RateLimit.
func (crl *ClientRateLimiter) Limit() RateLimit {
	return RateLimit{Interval: crl.interval, Limit: crl.limit}
}

// HitEvent is triggered with the client key and the RateLimit once a client exceeds the limit.
func (crl *ClientRateLimiter) HitEvent() *events.Event {
	return crl.hitEvent
}

// Close stops the expiration of the client records.
func (crl *ClientRateLimiter) Close() {
	if err := crl.clientsRecords.Close(); err != nil {
		crl.log.Errorw("Failed to close clients records cache", "err", err)
	}
}

func (crl *ClientRateLimiter) doCount(key string) (bool, error) {
	limit := crl.limit
	if limit <= 0 {
		return true, nil
	}

	recordI, err := crl.clientsRecords.Get(key)
	if err != nil {
		return false, errors.WithStack(err)
	}
	record := recordI.(*limiterRecord)
	record.counter.Incr(1)

	if int(record.counter.Rate()) > limit {
		if !record.limitHitReported.Swap(true) {
			crl.log.Infow("Client hit the request limit",
				"limit", limit, "interval", crl.interval, "client", key)
			crl.hitEvent.Trigger(key, &RateLimit{Limit: limit, Interval: crl.interval})
		}
		return false, nil
	}
	record.limitHitReported.Store(false)

	return true, nil
}

func limitHitCaller(handler interface{}, params ...interface{}) {
	handler.(func(string, *RateLimit))(params[0].(string), params[1].(*RateLimit))
}
