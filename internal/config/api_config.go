package config

import "strings"

const (
	apiBaseURLVar     = "GASTOMETRO_API_BASE_URL"
	viteAPIBaseURLVar = "VITE_API_BASE_URL"
)

type API struct{}

var _ APIConfig = API{}

// GetAPIBaseURL returns the REST API base URL without trailing slashes. The web
// client's VITE_API_BASE_URL is honoured so an existing .env keeps working.
// An empty result means the client is unconfigured.
func (API) GetAPIBaseURL() string {
	url := GetEnv(apiBaseURLVar, GetEnv(viteAPIBaseURLVar, ""))
	return strings.TrimRight(strings.TrimSpace(url), "/")
}
