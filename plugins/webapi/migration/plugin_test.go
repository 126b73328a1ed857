package migration

import (
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iotaledger/migration-address/packages/address"
	"github.com/iotaledger/migration-address/packages/converter"
	"github.com/iotaledger/migration-address/packages/jsonmodels"
	"github.com/iotaledger/migration-address/packages/metrics"
	"github.com/iotaledger/migration-address/packages/ratelimiter"
	"github.com/iotaledger/migration-address/plugins/webapi"
)

type testEnv struct {
	server   *webapi.Server
	endpoint *Endpoint
	metrics  *metrics.ConversionMetrics
}

func newTestEnv(t *testing.T) *testEnv {
	server, err := webapi.New(&webapi.Parameters{
		BindAddress: "127.0.0.1:0",
		RateLimit:   ratelimiter.RateLimit{Interval: time.Minute},
	}, zap.NewNop().Sugar())
	require.NoError(t, err)

	conversionMetrics := metrics.NewConversionMetrics()
	endpoint, err := New(&Parameters{
		CacheTTL:     time.Minute,
		CacheSize:    100,
		WorkerCount:  4,
		MaxBatchSize: 10,
	}, converter.New(), conversionMetrics, zap.NewNop().Sugar())
	require.NoError(t, err)
	t.Cleanup(endpoint.Shutdown)

	endpoint.Register(server.Echo())

	return &testEnv{server: server, endpoint: endpoint, metrics: conversionMetrics}
}

func (env *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)

	return rec
}

func (env *testEnv) get(t *testing.T, path string) (int, jsonmodels.AddressResponse) {
	rec := env.do(http.MethodGet, path, "")

	var response jsonmodels.AddressResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	return rec.Code, response
}

func randomBech32(t *testing.T) string {
	var addr address.Ed25519Address
	_, err := rand.Read(addr[:])
	require.NoError(t, err)

	return addr.Bech32(address.PrefixMainnet)
}

func TestConvertEndpoints(t *testing.T) {
	env := newTestEnv(t)
	modern := randomBech32(t)

	code, response := env.get(t, "/migration/legacy/"+modern)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, response.Address, 90)
	assert.True(t, strings.HasPrefix(response.Address, "TRANSFER"))
	assert.Equal(t, "legacy", response.Direction)
	assert.Empty(t, response.Error)
	legacy := response.Address

	code, response = env.get(t, "/migration/modern/"+legacy)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, modern, response.Address)
	assert.Equal(t, "modern", response.Direction)

	// the 81-tryte body converts as well
	code, response = env.get(t, "/migration/modern/"+legacy[:81])
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, modern, response.Address)

	code, response = env.get(t, "/migration/convert/"+legacy)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, modern, response.Address)
	assert.Equal(t, "modern", response.Direction)

	code, response = env.get(t, "/migration/convert/"+modern)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, legacy, response.Address)
	assert.Equal(t, "legacy", response.Direction)
}

func TestConvertEndpointErrors(t *testing.T) {
	env := newTestEnv(t)
	modern := randomBech32(t)

	code, response := env.get(t, "/migration/legacy/iota1broken")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, response.Error)
	assert.Empty(t, response.Address)

	// a modern address on the legacy input route
	code, response = env.get(t, "/migration/modern/"+modern)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, response.Error)

	_, response = env.get(t, "/migration/legacy/"+modern)
	legacy := response.Address
	code, response = env.get(t, "/migration/modern/A"+legacy[1:])
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, response.Error)

	data, err := bech32.ConvertBits(append([]byte{byte(address.NFTAddressType)}, make([]byte, 32)...), 8, 5, true)
	require.NoError(t, err)
	nft, err := bech32.Encode("iota", data)
	require.NoError(t, err)
	code, response = env.get(t, "/migration/legacy/"+nft)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, response.Error)

	assert.EqualValues(t, 1, env.metrics.Successful())
	assert.EqualValues(t, 4, env.metrics.Failed())
}

func TestConvertCache(t *testing.T) {
	env := newTestEnv(t)
	modern := randomBech32(t)

	_, first := env.get(t, "/migration/legacy/"+modern)
	_, second := env.get(t, "/migration/legacy/"+modern)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, env.endpoint.CacheSize())
	assert.EqualValues(t, 1, env.metrics.CacheHits())
	assert.EqualValues(t, 2, env.metrics.Successful())

	// failures are not cached
	env.get(t, "/migration/legacy/iota1broken")
	env.get(t, "/migration/legacy/iota1broken")
	assert.Equal(t, 1, env.endpoint.CacheSize())
	assert.EqualValues(t, 1, env.metrics.CacheHits())
}

func TestConvertDebugLog(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	endpoint, err := New(&Parameters{
		CacheTTL:     time.Minute,
		CacheSize:    100,
		WorkerCount:  1,
		MaxBatchSize: 1,
	}, converter.New(), metrics.NewConversionMetrics(), zap.New(core).Sugar())
	require.NoError(t, err)
	defer endpoint.Shutdown()

	var addr address.Ed25519Address
	_, err = rand.Read(addr[:])
	require.NoError(t, err)

	result := endpoint.convertTo(converter.ToLegacy, addr.Bech32(address.PrefixMainnet))
	require.NoError(t, result.Err)
	assert.Equal(t, addr, result.Ed25519Address)

	// answered from the cache, logged only once
	endpoint.convertTo(converter.ToLegacy, addr.Bech32(address.PrefixMainnet))
	endpoint.convertTo(converter.ToLegacy, "iota1broken")

	entries := logs.FilterMessage("Converted address").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, addr.Base58(), fields["base58"])
	assert.Equal(t, addr.String(), fields["address"])
}

func TestConvertBatchEndpoint(t *testing.T) {
	env := newTestEnv(t)

	addresses := []string{randomBech32(t), "garbage", randomBech32(t)}
	body, err := json.Marshal(jsonmodels.ConvertBatchRequest{Addresses: addresses})
	require.NoError(t, err)

	rec := env.do(http.MethodPost, "/migration/convert", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var response jsonmodels.ConvertBatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Results, len(addresses))
	for i, result := range response.Results {
		assert.Equal(t, addresses[i], result.Input)
		assert.Equal(t, "legacy", result.Direction)
	}
	assert.Len(t, response.Results[0].Address, 90)
	assert.Empty(t, response.Results[0].Error)
	assert.NotEmpty(t, response.Results[1].Error)
	assert.Empty(t, response.Results[1].Address)
	assert.Len(t, response.Results[2].Address, 90)

	// converting the results back yields the inputs
	body, err = json.Marshal(jsonmodels.ConvertBatchRequest{Addresses: []string{response.Results[0].Address, response.Results[2].Address}})
	require.NoError(t, err)
	rec = env.do(http.MethodPost, "/migration/convert", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var back jsonmodels.ConvertBatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &back))
	require.Len(t, back.Results, 2)
	assert.Equal(t, addresses[0], back.Results[0].Address)
	assert.Equal(t, addresses[2], back.Results[1].Address)
	assert.Equal(t, "modern", back.Results[0].Direction)
}

func TestConvertBatchEndpointErrors(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []string{
		`{"addresses": []}`,
		`{"addresses": ["a","b","c","d","e","f","g","h","i","j","k"]}`,
		`{"addresses": `,
	} {
		rec := env.do(http.MethodPost, "/migration/convert", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)

		var response jsonmodels.ConvertBatchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.NotEmpty(t, response.Error)
		assert.Empty(t, response.Results)
	}
}

func TestLiveFeed(t *testing.T) {
	env := newTestEnv(t)
	ts := httptest.NewServer(env.server)
	defer ts.Close()

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/migration/feed", nil)
	require.NoError(t, err)
	defer ws.Close()

	require.Eventually(t, func() bool {
		return env.endpoint.Feed().Clients() == 1
	}, 5*time.Second, 10*time.Millisecond)

	modern := randomBech32(t)
	res, err := http.Get(ts.URL + "/migration/legacy/" + modern)
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())
	require.Equal(t, http.StatusOK, res.StatusCode)

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg jsonmodels.ConvertResult
	require.NoError(t, ws.ReadJSON(&msg))
	assert.Equal(t, modern, msg.Input)
	assert.Equal(t, "legacy", msg.Direction)
	assert.Len(t, msg.Address, 90)

	env.endpoint.Feed().Close()
	assert.Equal(t, 0, env.endpoint.Feed().Clients())

	// the server closes the connection
	_, _, err = ws.ReadMessage()
	assert.Error(t, err)
}
