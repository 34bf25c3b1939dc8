// file: internal/middleware/recovery.go
package middleware

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"badgehub/internal/contextutils"
	"badgehub/internal/response"
	"badgehub/internal/services"
)

// Recovery converts handler panics into 500 responses.
func Recovery(builder *response.Builder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger := contextutils.GetLogger(r.Context())
					logger.Error("Handler panic recovered",
						zap.Any("panic", rec),
						zap.ByteString("stack", debug.Stack()),
					)
					builder.WriteError(w, r, services.NewInternalError("internal server error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
