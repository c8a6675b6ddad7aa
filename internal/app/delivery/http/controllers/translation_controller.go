package controllers

import (
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/dto/responses"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type TranslationController struct {
	Log                *zap.Logger
	TranslationUsecase contracts.TranslationUsecase
	Timeout            time.Duration
}

func NewTranslationController(logger *zap.Logger, translationUsecase contracts.TranslationUsecase, timeout time.Duration) *TranslationController {
	return &TranslationController{
		Log:                logger,
		TranslationUsecase: translationUsecase,
		Timeout:            timeout,
	}
}

func (ctrl *TranslationController) TranslateBatch(w http.ResponseWriter, r *http.Request) {
	request := new(requests.TranslateBatch)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeTranslateBatchRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.Timeout)
	defer cancel()

	translations, provider, err := ctrl.TranslationUsecase.TranslateBatch(ctx, request.Texts, request.TargetLanguage, request.SourceLanguage)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TranslateBatchSuccessMessage, responses.TranslateBatch{
		Translations: translations,
		Provider:     provider,
	})
}
