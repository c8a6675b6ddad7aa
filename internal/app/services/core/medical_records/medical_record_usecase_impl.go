package medicalRecords

import (
	"context"
	"fmt"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type medicalRecordUsecase struct {
	MedicalRecordRepository contracts.MedicalRecordRepository
	PatientRepository       contracts.PatientRepository
	NotificationUsecase     contracts.NotificationUsecase
	Log                     *zap.Logger
}

func NewMedicalRecordUsecase(
	medicalRecordRepository contracts.MedicalRecordRepository,
	patientRepository contracts.PatientRepository,
	notificationUsecase contracts.NotificationUsecase,
	logger *zap.Logger,
) contracts.MedicalRecordUsecase {
	return &medicalRecordUsecase{
		MedicalRecordRepository: medicalRecordRepository,
		PatientRepository:       patientRepository,
		NotificationUsecase:     notificationUsecase,
		Log:                     logger,
	}
}

func (uc *medicalRecordUsecase) FindAll(ctx context.Context, filter *requests.MedicalRecordFilter) ([]models.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalRecordUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryKey, filter),
	)

	result, err := uc.MedicalRecordRepository.FindAll(ctx, filter)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.FindAll error fetching records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("medicalRecordUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	return result, nil
}

func (uc *medicalRecordUsecase) FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	uc.Log.Info("medicalRecordUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return uc.findExisting(ctx, recordID)
}

func (uc *medicalRecordUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateMedicalRecord) (*models.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalRecordUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(nil, "patient", request.PatientID)
	}

	record := &models.MedicalRecord{
		ID:          utils.GenerateID(),
		PatientID:   request.PatientID,
		DoctorID:    request.DoctorID,
		Type:        request.Type,
		Title:       request.Title,
		Description: request.Description,
		Diagnosis:   request.Diagnosis,
		Medications: request.Medications,
		VisitDate:   request.VisitDate,
	}
	if record.DoctorID == "" && session != nil {
		record.DoctorID = session.UserID
	}
	record.SetCreatedAtUpdatedAt()

	if err := uc.MedicalRecordRepository.Create(ctx, record); err != nil {
		uc.Log.Error("medicalRecordUsecase.Create error storing record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.notifyAssignedDoctor(ctx, session, patient, record)

	uc.Log.Info("medicalRecordUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, record.ID),
	)
	return record, nil
}

func (uc *medicalRecordUsecase) Update(ctx context.Context, recordID string, request *requests.UpdateMedicalRecord) (*models.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalRecordUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	record, err := uc.findExisting(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if request.Type != nil {
		record.Type = *request.Type
	}
	if request.Title != nil {
		record.Title = *request.Title
	}
	if request.Description != nil {
		record.Description = *request.Description
	}
	if request.Diagnosis != nil {
		record.Diagnosis = *request.Diagnosis
	}
	if request.Medications != nil {
		record.Medications = request.Medications
	}
	if request.VisitDate != nil {
		record.VisitDate = *request.VisitDate
	}
	record.SetUpdatedAt()

	if err := uc.MedicalRecordRepository.Update(ctx, record); err != nil {
		uc.Log.Error("medicalRecordUsecase.Update error storing record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return record, nil
}

func (uc *medicalRecordUsecase) Delete(ctx context.Context, recordID string) error {
	uc.Log.Info("medicalRecordUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	deleted, err := uc.MedicalRecordRepository.Delete(ctx, recordID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrResourceNotFound(nil, "medical record", recordID)
	}
	return nil
}

func (uc *medicalRecordUsecase) findExisting(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	record, err := uc.MedicalRecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrResourceNotFound(nil, "medical record", recordID)
	}
	return record, nil
}

// notifyAssignedDoctor tells the patient's doctor about a record someone else wrote.
// Failures are logged only, the record is already stored.
func (uc *medicalRecordUsecase) notifyAssignedDoctor(ctx context.Context, session *models.Session, patient *models.Patient, record *models.MedicalRecord) {
	if uc.NotificationUsecase == nil || patient.AssignedDoctorID == "" {
		return
	}
	if session != nil && session.UserID == patient.AssignedDoctorID {
		return
	}

	_, err := uc.NotificationUsecase.Notify(ctx, &requests.CreateNotification{
		UserID:  patient.AssignedDoctorID,
		Title:   constvars.NotificationTitleMedicalRecordAdded,
		Message: fmt.Sprintf(constvars.NotificationMessageMedicalRecordFmt, record.Type, record.Title, patient.Name),
		Type:    constvars.NotificationTypeMedicalRecord,
	})
	if err != nil {
		uc.Log.Warn("medicalRecordUsecase.notifyAssignedDoctor error creating notification",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingUserIDKey, patient.AssignedDoctorID),
			zap.Error(err),
		)
	}
}
