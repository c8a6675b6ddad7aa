package controllers

import (
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type MedicalRecordController struct {
	Log                  *zap.Logger
	MedicalRecordUsecase contracts.MedicalRecordUsecase
	Timeout              time.Duration
}

func NewMedicalRecordController(logger *zap.Logger, medicalRecordUsecase contracts.MedicalRecordUsecase, timeout time.Duration) *MedicalRecordController {
	return &MedicalRecordController{
		Log:                  logger,
		MedicalRecordUsecase: medicalRecordUsecase,
		Timeout:              timeout,
	}
}

func (ctrl *MedicalRecordController) FindAll(w http.ResponseWriter, r *http.Request) {
	filter := &requests.MedicalRecordFilter{
		PatientID: strings.TrimSpace(r.URL.Query().Get(constvars.QueryParamPatientID)),
	}

	ctx, cancel := requestContext(r, ctrl.Timeout)
	defer cancel()

	result, err := ctrl.MedicalRecordUsecase.FindAll(ctx, filter)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalRecordsSuccessMessage, result)
}

func (ctrl *MedicalRecordController) FindByID(w http.ResponseWriter, r *http.Request) {
	recordID, err := idParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.Timeout)
	defer cancel()

	result, err := ctrl.MedicalRecordUsecase.FindByID(ctx, recordID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalRecordSuccessMessage, result)
}

func (ctrl *MedicalRecordController) Create(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateMedicalRecord)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeCreateMedicalRecordRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.Timeout)
	defer cancel()

	result, err := ctrl.MedicalRecordUsecase.Create(ctx, session, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMedicalRecordSuccessMessage, result)
}

func (ctrl *MedicalRecordController) Update(w http.ResponseWriter, r *http.Request) {
	recordID, err := idParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateMedicalRecord)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeUpdateMedicalRecordRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.Timeout)
	defer cancel()

	result, err := ctrl.MedicalRecordUsecase.Update(ctx, recordID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateMedicalRecordSuccessMessage, result)
}

func (ctrl *MedicalRecordController) Delete(w http.ResponseWriter, r *http.Request) {
	recordID, err := idParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.Timeout)
	defer cancel()

	if err := ctrl.MedicalRecordUsecase.Delete(ctx, recordID); err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteMedicalRecordSuccessMessage, nil)
}
