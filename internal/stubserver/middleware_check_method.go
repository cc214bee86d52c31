// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubserver

import (
	"net/http"

	"github.com/fahim1105/seu-matrimony/internal/app"
	"github.com/fahim1105/seu-matrimony/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. A known
// path requested with an unregistered method gets the backend's JSON 404,
// the same answer as an unknown path, so clients cannot tell the two apart.
//
// Only exact pattern matches are considered; parameterised segments are not
// expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteError(w, http.StatusNotFound, app.MsgNotFound, "")
			return
		}

		router.ServeHTTP(w, r)
	}
}

func (h *Handler) notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusNotFound, app.MsgNotFound, "")
}
