package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hkust/smart-buddy/internal/api/handlers"
	"github.com/hkust/smart-buddy/internal/api/middleware"
	"github.com/hkust/smart-buddy/internal/service"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	userHandler := handlers.NewUserHandler(services.User)
	tokenHandler := handlers.NewTokenHandler(services.Token)
	messageHandler := handlers.NewMessageHandler(services.Message)
	chatStreamHandler := handlers.NewChatStreamHandler(services.Message, services.Resolver)

	r.Route("/smart_buddy", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/users", userHandler.Create)
			r.Post("/tokens", tokenHandler.Create)
		})

		r.Route("/chatroom", func(r chi.Router) {
			r.Get("/chat-history", messageHandler.History)
			r.Post("/messages", messageHandler.Create)
			r.Get("/stream", chatStreamHandler.Handle)
		})
	})

	return r
}
