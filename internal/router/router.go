// file: internal/router/router.go
package router

import (
	"net/http"

	"go.uber.org/zap"

	"badgehub/internal/cache"
	"badgehub/internal/database"
	"badgehub/internal/handlers/api/v1/badges"
	"badgehub/internal/response"
	"badgehub/internal/services"
)

// Dependencies carries everything the router wires up. DB is nil when
// the service runs on the in-memory repositories.
type Dependencies struct {
	BadgeController *badges.BadgeController
	DB              *database.Manager
	Cache           cache.Cache
	Builder         *response.Builder
	Logger          *zap.Logger
}

// SetupRouter builds the HTTP route table.
func SetupRouter(deps *Dependencies) http.Handler {
	mux := http.NewServeMux()

	// API v1
	mux.HandleFunc("/api/v1/badges", deps.BadgeController.HandleBadges)

	// Monitoring
	mux.HandleFunc("/health", healthHandler(deps))
	mux.HandleFunc("/readyz", readinessHandler(deps))

	return mux
}

// healthHandler reports liveness plus runtime stats.
func healthHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]interface{}{
			"status": "ok",
		}
		if deps.DB != nil {
			payload["database"] = deps.DB.Stats()
		} else {
			payload["database"] = "in-memory"
		}
		deps.Builder.WriteSuccess(w, r, payload)
	}
}

// readinessHandler fails when a backing dependency is down.
func readinessHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.DB != nil {
			if err := deps.DB.Health(r.Context()); err != nil {
				deps.Builder.WriteError(w, r, services.NewServiceUnavailableError("database not ready").WithCause(err))
				return
			}
		}
		if err := deps.Cache.Health(r.Context()); err != nil {
			deps.Builder.WriteError(w, r, services.NewServiceUnavailableError("cache not ready").WithCause(err))
			return
		}
		deps.Builder.WriteSuccess(w, r, map[string]interface{}{"status": "ready"})
	}
}
