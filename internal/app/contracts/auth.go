package contracts

import (
	"context"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Register(ctx context.Context, request *requests.Register) (*responses.Register, error)
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
	RefreshToken(ctx context.Context, session *models.Session) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
	GetProfile(ctx context.Context, session *models.Session) (*responses.User, error)
	ValidateToken(ctx context.Context, token string, allowExpired bool) (*models.Session, error)
}
