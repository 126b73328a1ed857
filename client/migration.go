package client

import (
	"net/http"
	"net/url"

	"github.com/iotaledger/migration-address/packages/jsonmodels"
)

const (
	routeLegacyAddress = "/migration/legacy/"
	routeModernAddress = "/migration/modern/"
	routeConvert       = "/migration/convert"
)

// LegacyAddress converts the bech32 address modernAddress into its migration address.
func (api *MigrationAPI) LegacyAddress(modernAddress string) (string, error) {
	res := &jsonmodels.AddressResponse{}
	if err := api.do(http.MethodGet, routeLegacyAddress+url.PathEscape(modernAddress), nil, res); err != nil {
		return "", err
	}
	return res.Address, nil
}

// ModernAddress converts the migration address legacyAddress into its bech32 address.
func (api *MigrationAPI) ModernAddress(legacyAddress string) (string, error) {
	res := &jsonmodels.AddressResponse{}
	if err := api.do(http.MethodGet, routeModernAddress+url.PathEscape(legacyAddress), nil, res); err != nil {
		return "", err
	}
	return res.Address, nil
}

// Convert converts address in the direction the node derives from its length.
func (api *MigrationAPI) Convert(address string) (*jsonmodels.AddressResponse, error) {
	res := &jsonmodels.AddressResponse{}
	if err := api.do(http.MethodGet, routeConvert+"/"+url.PathEscape(address), nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ConvertBatch converts all addresses in one request. Failed conversions carry their error in the result.
func (api *MigrationAPI) ConvertBatch(addresses []string) (*jsonmodels.ConvertBatchResponse, error) {
	res := &jsonmodels.ConvertBatchResponse{}
	if err := api.do(http.MethodPost, routeConvert, &jsonmodels.ConvertBatchRequest{Addresses: addresses}, res); err != nil {
		return nil, err
	}
	return res, nil
}
