package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-identity-service/internal/config"
	"go-identity-service/internal/handler"
	"go-identity-service/internal/middleware"
)

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Post("/signup", authHandler.Signup)
		api.Post("/login", authHandler.Login)

		api.Route("/users", func(users chi.Router) {
			users.Post("/createprofile", profileHandler.Create)
			users.Get("/allprofile", profileHandler.List)
			users.Post("/profileupdate", profileHandler.Update)
			users.With(authMiddleware.RequireAuth).Get("/me", authHandler.Me)
		})
	})

	return r
}
