package client

import (
	"crypto/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iotaledger/migration-address/packages/address"
	"github.com/iotaledger/migration-address/packages/converter"
	"github.com/iotaledger/migration-address/packages/metrics"
	"github.com/iotaledger/migration-address/packages/ratelimiter"
	"github.com/iotaledger/migration-address/plugins/webapi"
	"github.com/iotaledger/migration-address/plugins/webapi/healthz"
	"github.com/iotaledger/migration-address/plugins/webapi/info"
	webapimigration "github.com/iotaledger/migration-address/plugins/webapi/migration"
)

func newTestNode(t *testing.T, params *webapi.Parameters) (*httptest.Server, *healthz.Healthz) {
	params.RateLimit.Interval = time.Minute

	server, err := webapi.New(params, zap.NewNop().Sugar())
	require.NoError(t, err)

	c := converter.New()
	conversionMetrics := metrics.NewConversionMetrics()
	endpoint, err := webapimigration.New(&webapimigration.Parameters{
		CacheTTL:     time.Minute,
		CacheSize:    100,
		WorkerCount:  4,
		MaxBatchSize: 100,
	}, c, conversionMetrics, zap.NewNop().Sugar())
	require.NoError(t, err)
	t.Cleanup(endpoint.Shutdown)

	h := healthz.New()
	h.Register(server.Echo())
	info.Register(server.Echo(), c, conversionMetrics, endpoint)
	endpoint.Register(server.Echo())
	server.Echo().GET("/fail", func(c echo.Context) error {
		return errors.New("boom")
	})

	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)

	return ts, h
}

func randomBech32(t *testing.T) string {
	var addr address.Ed25519Address
	_, err := rand.Read(addr[:])
	require.NoError(t, err)

	return addr.Bech32(address.PrefixMainnet)
}

func TestMigrationAPI(t *testing.T) {
	ts, _ := newTestNode(t, &webapi.Parameters{})
	api := NewMigrationAPI(ts.URL)
	assert.Equal(t, ts.URL, api.BaseURL())

	modern := randomBech32(t)
	legacy, err := api.LegacyAddress(modern)
	require.NoError(t, err)
	assert.Len(t, legacy, 90)

	back, err := api.ModernAddress(legacy)
	require.NoError(t, err)
	assert.Equal(t, modern, back)

	res, err := api.Convert(legacy)
	require.NoError(t, err)
	assert.Equal(t, modern, res.Address)
	assert.Equal(t, "modern", res.Direction)

	batch, err := api.ConvertBatch([]string{modern, legacy, "nonsense"})
	require.NoError(t, err)
	require.Len(t, batch.Results, 3)
	assert.Equal(t, legacy, batch.Results[0].Address)
	assert.Equal(t, modern, batch.Results[1].Address)
	assert.NotEmpty(t, batch.Results[2].Error)

	nodeInfo, err := api.Info()
	require.NoError(t, err)
	assert.Equal(t, "iota", nodeInfo.NetworkPrefix)
	assert.EqualValues(t, 5, nodeInfo.SuccessfulConversions)
	assert.EqualValues(t, 1, nodeInfo.FailedConversions)
}

func TestMigrationAPIErrors(t *testing.T) {
	ts, _ := newTestNode(t, &webapi.Parameters{})
	api := NewMigrationAPI(ts.URL)

	_, err := api.LegacyAddress("iota1broken")
	assert.True(t, errors.Is(err, ErrBadRequest))

	_, err = api.ModernAddress(randomBech32(t))
	assert.True(t, errors.Is(err, ErrBadRequest))

	_, err = api.ConvertBatch(nil)
	assert.True(t, errors.Is(err, ErrBadRequest))

	err = api.do(http.MethodGet, "/unknown", nil, &errorresponse{})
	assert.True(t, errors.Is(err, ErrNotFound))

	err = api.do(http.MethodGet, "/fail", nil, &errorresponse{})
	assert.True(t, errors.Is(err, ErrInternalServerError))
}

func TestMigrationAPIBasicAuth(t *testing.T) {
	ts, _ := newTestNode(t, &webapi.Parameters{
		BasicAuth: webapi.BasicAuth{Enabled: true, Username: "user", Password: "secret"},
	})

	_, err := NewMigrationAPI(ts.URL).Info()
	assert.True(t, errors.Is(err, ErrUnauthorized))

	_, err = NewMigrationAPI(ts.URL, WithBasicAuth("user", "secret"), WithHTTPClient(&http.Client{}), WithTimeout(time.Second)).Info()
	assert.NoError(t, err)
}

func TestMigrationAPIRateLimit(t *testing.T) {
	ts, _ := newTestNode(t, &webapi.Parameters{
		RateLimit: ratelimiter.RateLimit{Limit: 1},
	})
	api := NewMigrationAPI(ts.URL)

	_, err := api.Info()
	require.NoError(t, err)

	_, err = api.Info()
	assert.True(t, errors.Is(err, ErrTooManyRequests))
}

func TestHealthy(t *testing.T) {
	ts, h := newTestNode(t, &webapi.Parameters{})
	api := NewMigrationAPI(ts.URL)

	healthy, err := api.Healthy()
	require.NoError(t, err)
	assert.False(t, healthy)

	h.SetHealthy(true)
	healthy, err = api.Healthy()
	require.NoError(t, err)
	assert.True(t, healthy)
}
