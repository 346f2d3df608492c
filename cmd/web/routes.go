package main

import (
	"net/http"

	"github.com/rs/cors"
)

func (app *application) routes() (*http.ServeMux, error) {
	mux := http.NewServeMux()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: app.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders: []string{"Content-Type"},
	})

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(commonContext(next)))
		}
		page = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(shared(app.noSurf(next)))))
		}
		api = func(next http.Handler) http.Handler {
			return app.recoverPanic(shared(corsHandler.Handler(next)))
		}
	)

	mux.Handle("POST /profiles", page(http.HandlerFunc(app.profilePOST)))
	mux.Handle("GET /plans/{id}", page(http.HandlerFunc(app.planGET)))
	mux.Handle("POST /plans/{id}/regenerate", page(http.HandlerFunc(app.planRegeneratePOST)))
	mux.Handle("GET /plans/{id}/export.pdf", page(http.HandlerFunc(app.planExportPDF)))

	mux.Handle("POST /api/users", api(http.HandlerFunc(app.userCreatePOST)))
	mux.Handle("GET /api/users/{id}", api(http.HandlerFunc(app.userGET)))
	mux.Handle("PUT /api/users/{id}/plans", api(http.HandlerFunc(app.userPlansPUT)))
	mux.Handle("GET /api/healthy", api(http.HandlerFunc(app.healthy)))

	// Home route (most specific)
	mux.Handle("GET /{$}", page(http.HandlerFunc(app.home)))

	mux.Handle("/", page(http.HandlerFunc(app.notFound)))

	return mux, nil
}
