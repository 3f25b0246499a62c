package model

// NetworkResult is the payload for get_network and switch_network.
type NetworkResult struct {
	Network  string `json:"network"`
	Endpoint string `json:"endpoint"`
}
