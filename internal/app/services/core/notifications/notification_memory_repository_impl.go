package notifications

import (
	"context"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/app/models"
	"sort"
	"sync"
)

type notificationMemoryRepository struct {
	mu            sync.RWMutex
	notifications map[string]models.Notification
}

func NewNotificationMemoryRepository() contracts.NotificationRepository {
	return &notificationMemoryRepository{
		notifications: make(map[string]models.Notification),
	}
}

// FindByUser returns the user's notifications, newest first.
func (repo *notificationMemoryRepository) FindByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]models.Notification, 0)
	for _, notification := range repo.notifications {
		if notification.UserID == userID {
			result = append(result, notification)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (repo *notificationMemoryRepository) FindByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	notification, ok := repo.notifications[notificationID]
	if !ok {
		return nil, nil
	}
	return &notification, nil
}

func (repo *notificationMemoryRepository) Create(ctx context.Context, notification *models.Notification) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.notifications[notification.ID] = *notification
	return nil
}

func (repo *notificationMemoryRepository) Update(ctx context.Context, notification *models.Notification) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.notifications[notification.ID] = *notification
	return nil
}

func (repo *notificationMemoryRepository) Delete(ctx context.Context, notificationID string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.notifications[notificationID]; !ok {
		return false, nil
	}
	delete(repo.notifications, notificationID)
	return true, nil
}
