package routers

import (
	"medadmin-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachTranslationRoutes(router chi.Router, translationController *controllers.TranslationController) {
	router.Post("/batch", translationController.TranslateBatch)
}
