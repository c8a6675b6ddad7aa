package contracts

import (
	"context"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/pkg/dto/requests"
)

type PatientUsecase interface {
	FindAll(ctx context.Context, filter *requests.PatientFilter) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	Create(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error)
	Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
	Replace(ctx context.Context, patientID string, request *requests.CreatePatient) (*models.Patient, error)
	Delete(ctx context.Context, patientID string) error
}

// PatientRepository lookups return a nil patient and nil error when nothing matches.
type PatientRepository interface {
	FindAll(ctx context.Context, filter *requests.PatientFilter) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	Create(ctx context.Context, patient *models.Patient) error
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, patientID string) (deleted bool, err error)
}
