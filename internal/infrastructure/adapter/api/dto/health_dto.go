package dto

// HealthResponse reports the state of the gateway and its dependencies
type HealthResponse struct {
	Status   string         `json:"status"`
	Provider ProviderHealth `json:"provider"`
	Database DatabaseHealth `json:"database"`
}

// ProviderHealth describes the provider environment in use
type ProviderHealth struct {
	Sandbox bool   `json:"sandbox"`
	Country string `json:"country"`
	Message string `json:"message,omitempty"`
}

// DatabaseHealth describes database reachability and pool usage
type DatabaseHealth struct {
	Status          string `json:"status"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Error           string `json:"error,omitempty"`
}
