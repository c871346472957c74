package endpoints

import (
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/api"
)

// All returns all endpoint instances.
func All() []api.Endpoint {
	return []api.Endpoint{
		&HealthEndpoint{},
		&EnhanceEndpoint{},

		// Static files (catch-all, must be last)
		&StaticEndpoint{},
	}
}
