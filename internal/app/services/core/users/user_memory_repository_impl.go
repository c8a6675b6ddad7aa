package users

import (
	"context"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/pkg/exceptions"
	"strings"
	"sync"
)

// UserMemoryRepository keeps users in process memory. Contents are lost on restart.
type UserMemoryRepository struct {
	mu      sync.RWMutex
	users   map[string]models.User
	byEmail map[string]string
}

func NewUserMemoryRepository() contracts.UserRepository {
	return &UserMemoryRepository{
		users:   make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

func (repo *UserMemoryRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	email := strings.ToLower(userModel.Email)
	if _, exists := repo.byEmail[email]; exists {
		return "", exceptions.ErrEmailAlreadyExist(nil)
	}
	repo.users[userModel.ID] = *userModel
	repo.byEmail[email] = userModel.ID
	return userModel.ID, nil
}

func (repo *UserMemoryRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	userID, ok := repo.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	user := repo.users[userID]
	return &user, nil
}

func (repo *UserMemoryRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.users[userID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (repo *UserMemoryRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	existing, ok := repo.users[userModel.ID]
	if !ok {
		return exceptions.ErrResourceNotFound(nil, "user", userModel.ID)
	}
	if !strings.EqualFold(existing.Email, userModel.Email) {
		delete(repo.byEmail, strings.ToLower(existing.Email))
		repo.byEmail[strings.ToLower(userModel.Email)] = userModel.ID
	}
	repo.users[userModel.ID] = *userModel
	return nil
}
