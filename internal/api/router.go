package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)       // Basic request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling

	// All API routes will be under /api
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/login", apiHandler.LoginHandler)
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		// Frame ingestion and emotion pipeline
		r.Post("/frames", apiHandler.PushFrameHandler)
		r.Get("/emotion/current", apiHandler.CurrentEmotionHandler)
		r.Post("/emotion/analyze", apiHandler.AnalyzeNowHandler)
		r.Post("/capture/start", apiHandler.StartCaptureHandler)
		r.Post("/capture/stop", apiHandler.StopCaptureHandler)
		r.Get("/capture/status", apiHandler.CaptureStatusHandler)

		// Content resolution
		r.Get("/recommendations/{emotion}", apiHandler.RecommendationsHandler)

		// Conversation
		r.Post("/chat/messages", apiHandler.PostChatMessageHandler)
		r.Get("/chat/messages", apiHandler.ChatHistoryHandler)
		r.Get("/chat/suggestions", apiHandler.SuggestionsHandler)

		// Credential management, admin-authenticated
		r.Group(func(r chi.Router) {
			r.Use(apiHandler.JWTAuthMiddleware)

			r.Get("/credentials", apiHandler.ListCredentialsHandler)
			r.Put("/credentials/{name}", apiHandler.SetCredentialHandler)
			r.Delete("/credentials/{name}", apiHandler.ClearCredentialHandler)
		})
	})

	return r
}
