// Package client implements a very simple wrapper for the web API of the migration address node.
package client

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"
)

var (
	// ErrBadRequest defines the "bad request" error.
	ErrBadRequest = errors.New("bad request")
	// ErrInternalServerError defines the "internal server error" error.
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound defines the "not found" error.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized defines the "unauthorized" error.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrTooManyRequests defines the "too many requests" error.
	ErrTooManyRequests = errors.New("too many requests")
	// ErrUnknownError defines the "unknown error" error.
	ErrUnknownError = errors.New("unknown error")
)

// DefaultTimeout is the timeout of a request if none is given.
const DefaultTimeout = 30 * time.Second

// Option is a function setting a MigrationAPI option.
type Option func(api *MigrationAPI)

// WithHTTPClient sets the http client the requests are sent with.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(api *MigrationAPI) {
		api.client = resty.NewWithClient(httpClient)
	}
}

// WithBasicAuth sets the basic auth credentials sent with every request.
func WithBasicAuth(username, password string) Option {
	return func(api *MigrationAPI) {
		api.username = username
		api.password = password
	}
}

// WithTimeout sets the timeout of a request.
func WithTimeout(timeout time.Duration) Option {
	return func(api *MigrationAPI) {
		api.timeout = timeout
	}
}

// MigrationAPI is an API wrapper over the web API of the migration address node.
type MigrationAPI struct {
	client   *resty.Client
	baseURL  string
	username string
	password string
	timeout  time.Duration
}

// NewMigrationAPI returns a new *MigrationAPI with the given baseURL.
func NewMigrationAPI(baseURL string, options ...Option) *MigrationAPI {
	api := &MigrationAPI{
		baseURL: baseURL,
		timeout: DefaultTimeout,
	}
	for _, option := range options {
		option(api)
	}

	if api.client == nil {
		api.client = resty.New()
	}
	api.client.SetHostURL(baseURL)
	api.client.SetTimeout(api.timeout)
	if api.username != "" {
		api.client.SetBasicAuth(api.username, api.password)
	}

	return api
}

// BaseURL returns the baseURL of the API.
func (api *MigrationAPI) BaseURL() string {
	return api.baseURL
}

type errorresponse struct {
	Error string `json:"error"`
}

func interpretBody(res *resty.Response, decodeTo interface{}) error {
	if res.StatusCode() == http.StatusOK || res.StatusCode() == http.StatusCreated {
		if decodeTo == nil {
			return nil
		}
		if err := json.Unmarshal(res.Body(), decodeTo); err != nil {
			return errors.Errorf("unable to decode response body: %w", err)
		}
		return nil
	}

	errRes := &errorresponse{}
	if err := json.Unmarshal(res.Body(), errRes); err != nil || errRes.Error == "" {
		errRes.Error = http.StatusText(res.StatusCode())
	}

	switch res.StatusCode() {
	case http.StatusInternalServerError:
		return errors.Errorf("%w: %s", ErrInternalServerError, errRes.Error)
	case http.StatusNotFound:
		return errors.Errorf("%w: %s", ErrNotFound, res.Request.URL)
	case http.StatusBadRequest:
		return errors.Errorf("%w: %s", ErrBadRequest, errRes.Error)
	case http.StatusUnauthorized:
		return errors.Errorf("%w: %s", ErrUnauthorized, errRes.Error)
	case http.StatusTooManyRequests:
		return errors.Errorf("%w: %s", ErrTooManyRequests, errRes.Error)
	}

	return errors.Errorf("%w: %s", ErrUnknownError, errRes.Error)
}

func (api *MigrationAPI) do(method string, route string, reqObj interface{}, resObj interface{}) error {
	req := api.client.R()
	if reqObj != nil {
		req.SetBody(reqObj)
	}

	res, err := req.Execute(method, route)
	if err != nil {
		return errors.Errorf("request %s %s failed: %w", method, route, err)
	}

	return interpretBody(res, resObj)
}
