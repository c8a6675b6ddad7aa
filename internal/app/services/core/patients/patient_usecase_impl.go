package patients

import (
	"context"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewPatientUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Log:               logger,
	}
}

func (uc *patientUsecase) FindAll(ctx context.Context, filter *requests.PatientFilter) ([]models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryKey, filter),
	)

	result, err := uc.PatientRepository.FindAll(ctx, filter)
	if err != nil {
		uc.Log.Error("patientUsecase.FindAll error fetching patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	return result, nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	return uc.findExisting(ctx, patientID)
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patient := &models.Patient{ID: utils.GenerateID()}
	applyCreatePatient(patient, request)
	patient.SetCreatedAtUpdatedAt()

	if err := uc.PatientRepository.Create(ctx, patient); err != nil {
		uc.Log.Error("patientUsecase.Create error storing patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

func (uc *patientUsecase) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.findExisting(ctx, patientID)
	if err != nil {
		return nil, err
	}

	applyUpdatePatient(patient, request)
	patient.SetUpdatedAt()

	if err := uc.PatientRepository.Update(ctx, patient); err != nil {
		uc.Log.Error("patientUsecase.Update error storing patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return patient, nil
}

func (uc *patientUsecase) Replace(ctx context.Context, patientID string, request *requests.CreatePatient) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Replace called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	existing, err := uc.findExisting(ctx, patientID)
	if err != nil {
		return nil, err
	}

	patient := &models.Patient{ID: existing.ID, TimeModel: existing.TimeModel}
	applyCreatePatient(patient, request)
	patient.SetUpdatedAt()

	if err := uc.PatientRepository.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (uc *patientUsecase) Delete(ctx context.Context, patientID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	deleted, err := uc.PatientRepository.Delete(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.Delete error deleting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		return exceptions.ErrResourceNotFound(nil, "patient", patientID)
	}
	return nil
}

func (uc *patientUsecase) findExisting(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(nil, "patient", patientID)
	}
	return patient, nil
}

func applyCreatePatient(patient *models.Patient, request *requests.CreatePatient) {
	patient.Name = request.Name
	patient.Gender = request.Gender
	patient.BirthDate = request.BirthDate
	patient.Phone = request.Phone
	patient.Email = request.Email
	patient.Address = request.Address
	patient.BloodType = request.BloodType
	patient.Allergies = request.Allergies
	patient.Status = request.Status
	if patient.Status == "" {
		patient.Status = constvars.PatientStatusActive
	}
	patient.AssignedDoctorID = request.AssignedDoctorID
	patient.EmergencyContact = toEmergencyContact(request.EmergencyContact)
}

func applyUpdatePatient(patient *models.Patient, request *requests.UpdatePatient) {
	if request.Name != nil {
		patient.Name = *request.Name
	}
	if request.Gender != nil {
		patient.Gender = *request.Gender
	}
	if request.BirthDate != nil {
		patient.BirthDate = *request.BirthDate
	}
	if request.Phone != nil {
		patient.Phone = *request.Phone
	}
	if request.Email != nil {
		patient.Email = *request.Email
	}
	if request.Address != nil {
		patient.Address = *request.Address
	}
	if request.BloodType != nil {
		patient.BloodType = *request.BloodType
	}
	if request.Allergies != nil {
		patient.Allergies = request.Allergies
	}
	if request.Status != nil {
		patient.Status = *request.Status
	}
	if request.AssignedDoctorID != nil {
		patient.AssignedDoctorID = *request.AssignedDoctorID
	}
	if request.EmergencyContact != nil {
		patient.EmergencyContact = toEmergencyContact(request.EmergencyContact)
	}
}

func toEmergencyContact(contact *requests.EmergencyContact) *models.EmergencyContact {
	if contact == nil {
		return nil
	}
	return &models.EmergencyContact{
		Name:         contact.Name,
		Relationship: contact.Relationship,
		Phone:        contact.Phone,
	}
}
