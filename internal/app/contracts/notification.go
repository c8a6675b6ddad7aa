package contracts

import (
	"context"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/pkg/dto/requests"
)

type NotificationUsecase interface {
	FindByUser(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string, read bool) (*models.Notification, error)
	Delete(ctx context.Context, userID, notificationID string) error
	Notify(ctx context.Context, request *requests.CreateNotification) (*models.Notification, error)
}

type NotificationRepository interface {
	FindByUser(ctx context.Context, userID string) ([]models.Notification, error)
	FindByID(ctx context.Context, notificationID string) (*models.Notification, error)
	Create(ctx context.Context, notification *models.Notification) error
	Update(ctx context.Context, notification *models.Notification) error
	Delete(ctx context.Context, notificationID string) (deleted bool, err error)
}
