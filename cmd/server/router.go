package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/promanage/promanage-api/internal/api"
	apiMiddleware "github.com/promanage/promanage-api/internal/api/middleware"
	"github.com/promanage/promanage-api/internal/api/shared"
)

// healthResponse is the body of the health check endpoint.
type healthResponse struct {
	Service string    `json:"service"`
	Status  string    `json:"status"`
	Time    time.Time `json:"time"`
}

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
		app.logger,
	)
	cardHandler := api.NewCardHandler(app.boardService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Register routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			// Public endpoints
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected endpoints
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Put("/changePassword", authHandler.ChangePassword)
			})
		})

		r.Route("/task", func(r chi.Router) {
			// Public endpoints. Reads were never gated in the original API
			// and its clients call them without a token.
			r.Get("/allTasks/{ownerId}", cardHandler.ListCards)
			r.Put("/tasks/{taskId}", cardHandler.SetState)
			r.Get("/board/card/{cardId}", cardHandler.GetCard)
			r.Get("/counts/{ownerId}", cardHandler.GetCounts)

			// Protected endpoints
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Post("/newTask", cardHandler.CreateCard)
				r.Put("/cards/{cardId}/tasks/{taskId}", cardHandler.ToggleChecklistItem)
				r.Put("/edit/{id}", cardHandler.EditCard)
				r.Delete("/delete/{id}", cardHandler.DeleteCard)
			})
		})
	})

	// Home and health endpoints
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, api.MessageResponse{
			Message: "This is Home route",
		})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, healthResponse{
			Service: "Pro Manage",
			Status:  "Active",
			Time:    time.Now(),
		})
	})

	return r
}
