package routers

import (
	"medadmin-service/internal/app/delivery/http/controllers"
	"medadmin-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *controllers.NotificationController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", notificationController.FindMine)
	router.Patch("/{id}", notificationController.Update)
	router.Delete("/{id}", notificationController.Delete)
}
