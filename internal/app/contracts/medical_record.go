package contracts

import (
	"context"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/pkg/dto/requests"
)

type MedicalRecordUsecase interface {
	FindAll(ctx context.Context, filter *requests.MedicalRecordFilter) ([]models.MedicalRecord, error)
	FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error)
	Create(ctx context.Context, session *models.Session, request *requests.CreateMedicalRecord) (*models.MedicalRecord, error)
	Update(ctx context.Context, recordID string, request *requests.UpdateMedicalRecord) (*models.MedicalRecord, error)
	Delete(ctx context.Context, recordID string) error
}

type MedicalRecordRepository interface {
	FindAll(ctx context.Context, filter *requests.MedicalRecordFilter) ([]models.MedicalRecord, error)
	FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error)
	Create(ctx context.Context, record *models.MedicalRecord) error
	Update(ctx context.Context, record *models.MedicalRecord) error
	Delete(ctx context.Context, recordID string) (deleted bool, err error)
}
