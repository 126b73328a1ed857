package webapi

import (
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/migration-address/packages/converter"
)

// ErrRateLimitExceeded is returned to clients that sent too many requests.
var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// region ErrorResponse ////////////////////////////////////////////////////////////////////////////////////////////////

// ErrorResponse is the response that is returned when an error occurred in any of the endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse returns an ErrorResponse from the given error.
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Error: err.Error(),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// ConversionStatusCode returns the HTTP status code that reports the conversion error err. Errors caused by
// the input yield 400, all others 500.
func ConversionStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, converter.ErrParse),
		errors.Is(err, converter.ErrInvalidFormat),
		errors.Is(err, converter.ErrIntegrityMismatch),
		errors.Is(err, converter.ErrUnsupportedAddressType),
		errors.Is(err, converter.ErrInvalidChecksum):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
