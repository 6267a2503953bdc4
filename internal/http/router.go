package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ysakols/spltr3-sub001/internal/http/audit"
	"github.com/ysakols/spltr3-sub001/internal/http/balances"
	"github.com/ysakols/spltr3-sub001/internal/http/record"
)

func New(
	recordsV1 *record.Handler,
	balancesV1 *balances.Handler,
	auditV1 *audit.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/records", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			recordsV1.Routes(r)
		})

		r.Route("/groups", balancesV1.GroupRoutes)
		r.Route("/users", balancesV1.UserRoutes)

		r.Route("/audit", auditV1.Routes)
	})

	return router
}
