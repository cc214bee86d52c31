package stubserver

import (
	"net/http"

	"github.com/fahim1105/seu-matrimony/internal/app"
	"github.com/fahim1105/seu-matrimony/internal/utils"
	"github.com/go-chi/chi/v5"
)

// withMode simulates outages. It runs after routing, so the matched route
// pattern is known.
func (h *Handler) withMode(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch h.Mode() {
		case ModeDown:
			utils.WriteError(w, http.StatusServiceUnavailable, app.MsgServiceUnavailable, "")
			return
		case ModeLegacy:
			if legacyMissingRoutes[routePattern(r)] {
				utils.WriteError(w, http.StatusNotFound, app.MsgNotFound, "")
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// routePattern returns the full pattern of the matched route. Inside a
// middleware chi has only matched up to the current group, so the pattern
// is resolved against the router.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return r.URL.Path
	}
	if p := rctx.RoutePattern(); p != "" && p != "/*" {
		return p
	}

	tctx := chi.NewRouteContext()
	if rctx.Routes != nil && rctx.Routes.Match(tctx, r.Method, r.URL.Path) {
		return tctx.RoutePattern()
	}
	return r.URL.Path
}
