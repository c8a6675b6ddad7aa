package routers

import (
	"medadmin-service/internal/app/delivery/http/controllers"
	"medadmin-service/internal/app/delivery/http/middlewares"
	"medadmin-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", patientController.FindAll)
	router.Post("/", patientController.Create)
	router.Get("/{id}", patientController.FindByID)
	router.Patch("/{id}", patientController.Update)
	router.Put("/{id}", patientController.Replace)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Delete("/{id}", patientController.Delete)
}
