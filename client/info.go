package client

import (
	"net/http"

	"github.com/iotaledger/migration-address/packages/jsonmodels"
)

const (
	routeInfo    = "/info"
	routeHealthz = "/healthz"
)

// Info gets the info of the node.
func (api *MigrationAPI) Info() (*jsonmodels.InfoResponse, error) {
	res := &jsonmodels.InfoResponse{}
	if err := api.do(http.MethodGet, routeInfo, nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Healthy reports whether the node is up.
func (api *MigrationAPI) Healthy() (bool, error) {
	res, err := api.client.R().Get(routeHealthz)
	if err != nil {
		return false, err
	}

	switch res.StatusCode() {
	case http.StatusOK:
		return true, nil
	case http.StatusServiceUnavailable:
		return false, nil
	default:
		return false, interpretBody(res, nil)
	}
}
