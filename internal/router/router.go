package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cognireal-backend/internal/handlers"
	"cognireal-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	wizardHandler *handlers.WizardHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// ──── Chat ────
		r.Post("/chat", chatHandler.Chat)

		// ──── Onboarding Wizard ────
		r.Route("/wizard", func(r chi.Router) {
			r.Get("/questions", wizardHandler.Questions)
			r.Post("/complete", wizardHandler.Complete)
		})
	})

	return r
}
