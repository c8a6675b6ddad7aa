package contracts

import (
	"context"
	"medadmin-service/internal/app/models"
)

// UserRepository lookups return a nil user and nil error when nothing matches.
type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
}
