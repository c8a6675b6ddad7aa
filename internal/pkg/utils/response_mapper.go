package utils

import (
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/pkg/dto/responses"
)

// ConvertUserToResponse drops credentials from a stored user.
func ConvertUserToResponse(user *models.User) *responses.User {
	if user == nil {
		return nil
	}
	return &responses.User{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		Role:       user.Role,
		Status:     user.Status,
		Department: user.Department,
	}
}
