package jsonmodels

// AddressResponse is the HTTP response of a single address conversion.
type AddressResponse struct {
	Address   string `json:"address,omitempty"`
	Direction string `json:"direction,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ConvertBatchRequest holds the addresses to convert in one request.
type ConvertBatchRequest struct {
	Addresses []string `json:"addresses"`
}

// ConvertBatchResponse is the HTTP response of a batch conversion.
type ConvertBatchResponse struct {
	Results []ConvertResult `json:"results,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ConvertResult is the outcome of one conversion inside a batch.
type ConvertResult struct {
	Input     string `json:"input"`
	Address   string `json:"address,omitempty"`
	Direction string `json:"direction"`
	Error     string `json:"error,omitempty"`
}

// InfoResponse holds the conversion statistics of the node.
type InfoResponse struct {
	Version               string `json:"version"`
	NetworkPrefix         string `json:"networkPrefix"`
	VerifyChecksum        bool   `json:"verifyChecksum"`
	SuccessfulConversions uint64 `json:"successfulConversions"`
	FailedConversions     uint64 `json:"failedConversions"`
	ConversionsLastMinute int64  `json:"conversionsLastMinute"`
	CacheHits             uint64 `json:"cacheHits"`
	CacheSize             int    `json:"cacheSize"`
}
