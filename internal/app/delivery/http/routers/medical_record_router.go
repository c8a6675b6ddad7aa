package routers

import (
	"medadmin-service/internal/app/delivery/http/controllers"
	"medadmin-service/internal/app/delivery/http/middlewares"
	"medadmin-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMedicalRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicalRecordController *controllers.MedicalRecordController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", medicalRecordController.FindAll)
	router.Post("/", medicalRecordController.Create)
	router.Get("/{id}", medicalRecordController.FindByID)
	router.Patch("/{id}", medicalRecordController.Update)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor)).Delete("/{id}", medicalRecordController.Delete)
}
