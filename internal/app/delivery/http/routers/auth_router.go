package routers

import (
	"medadmin-service/internal/app/delivery/http/controllers"
	"medadmin-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, rateLimiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	router.Group(func(r chi.Router) {
		r.Use(rateLimiter.Limit)
		r.Post("/login", authController.Login)
		r.Post("/register", authController.Register)
		r.Post("/forgot-password", authController.ForgotPassword)
		r.Post("/reset-password", authController.ResetPassword)
	})

	router.With(middlewares.AuthenticateAllowExpired).Post("/refresh", authController.RefreshToken)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.Authenticate).Get("/me", authController.GetProfile)
}
