package notifications

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

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	Log                    *zap.Logger
}

func NewNotificationUsecase(notificationRepository contracts.NotificationRepository, logger *zap.Logger) contracts.NotificationUsecase {
	return &notificationUsecase{
		NotificationRepository: notificationRepository,
		Log:                    logger,
	}
}

func (uc *notificationUsecase) FindByUser(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("notificationUsecase.FindByUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	result, err := uc.NotificationRepository.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if unreadOnly {
		unread := make([]models.Notification, 0, len(result))
		for _, notification := range result {
			if !notification.Read {
				unread = append(unread, notification)
			}
		}
		result = unread
	}

	uc.Log.Info("notificationUsecase.FindByUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	return result, nil
}

func (uc *notificationUsecase) MarkRead(ctx context.Context, userID, notificationID string, read bool) (*models.Notification, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("notificationUsecase.MarkRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, notificationID),
	)

	notification, err := uc.findOwned(ctx, userID, notificationID)
	if err != nil {
		return nil, err
	}

	notification.Read = read
	notification.SetUpdatedAt()
	if err := uc.NotificationRepository.Update(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (uc *notificationUsecase) Delete(ctx context.Context, userID, notificationID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("notificationUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, notificationID),
	)

	if _, err := uc.findOwned(ctx, userID, notificationID); err != nil {
		return err
	}

	deleted, err := uc.NotificationRepository.Delete(ctx, notificationID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrResourceNotFound(nil, "notification", notificationID)
	}
	return nil
}

func (uc *notificationUsecase) Notify(ctx context.Context, request *requests.CreateNotification) (*models.Notification, error) {
	notification := &models.Notification{
		ID:      utils.GenerateID(),
		UserID:  request.UserID,
		Title:   request.Title,
		Message: request.Message,
		Type:    request.Type,
	}
	if notification.Type == "" {
		notification.Type = constvars.NotificationTypeSystem
	}
	notification.SetCreatedAtUpdatedAt()

	if err := uc.NotificationRepository.Create(ctx, notification); err != nil {
		uc.Log.Error("notificationUsecase.Notify error storing notification",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	return notification, nil
}

// findOwned hides notifications of other users behind a not found error.
func (uc *notificationUsecase) findOwned(ctx context.Context, userID, notificationID string) (*models.Notification, error) {
	notification, err := uc.NotificationRepository.FindByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if notification == nil || notification.UserID != userID {
		return nil, exceptions.ErrResourceNotFound(nil, "notification", notificationID)
	}
	return notification, nil
}
