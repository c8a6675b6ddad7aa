package controllers

import (
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type NotificationController struct {
	Log                 *zap.Logger
	NotificationUsecase contracts.NotificationUsecase
	Timeout             time.Duration
}

func NewNotificationController(logger *zap.Logger, notificationUsecase contracts.NotificationUsecase, timeout time.Duration) *NotificationController {
	return &NotificationController{
		Log:                 logger,
		NotificationUsecase: notificationUsecase,
		Timeout:             timeout,
	}
}

func (ctrl *NotificationController) FindMine(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	unreadOnly, _ := strconv.ParseBool(r.URL.Query().Get(constvars.QueryParamUnread))

	ctx, cancel := requestContext(r, ctrl.Timeout)
	defer cancel()

	result, err := ctrl.NotificationUsecase.FindByUser(ctx, session.UserID, unreadOnly)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNotificationsSuccessMessage, result)
}

func (ctrl *NotificationController) Update(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	notificationID, err := idParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateNotification)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.Timeout)
	defer cancel()

	result, err := ctrl.NotificationUsecase.MarkRead(ctx, session.UserID, notificationID, *request.Read)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateNotificationSuccessMessage, result)
}

func (ctrl *NotificationController) Delete(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	notificationID, err := idParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.Timeout)
	defer cancel()

	if err := ctrl.NotificationUsecase.Delete(ctx, session.UserID, notificationID); err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteNotificationSuccessMessage, nil)
}
