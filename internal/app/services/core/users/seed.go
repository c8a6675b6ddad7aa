package users

import (
	"context"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type demoUser struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Status     string
	Department string
}

var demoUsers = []demoUser{
	{Name: "System Administrator", Email: "admin@yanyucloud.com", Password: "admin123", Role: constvars.RoleAdmin, Status: constvars.UserStatusActive, Department: "Administration"},
	{Name: "Dr. Zhang Wei", Email: "doctor@yanyucloud.com", Password: "doctor123", Role: constvars.RoleDoctor, Status: constvars.UserStatusActive, Department: "Internal Medicine"},
	{Name: "Nurse Li Na", Email: "nurse@yanyucloud.com", Password: "nurse123", Role: constvars.RoleNurse, Status: constvars.UserStatusDisabled, Department: "Inpatient Ward"},
}

// SeedDemoUsers stores the demo accounts that do not exist yet. Passwords are
// hashed with the same bcrypt scheme used by registration.
func SeedDemoUsers(ctx context.Context, repo contracts.UserRepository, logger *zap.Logger) ([]models.User, error) {
	var seeded []models.User
	for _, demo := range demoUsers {
		existing, err := repo.FindByEmail(ctx, demo.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}

		hashedPassword, err := utils.HashPassword(demo.Password)
		if err != nil {
			return nil, exceptions.ErrHashPassword(err)
		}

		user := models.User{
			ID:         utils.GenerateID(),
			Name:       demo.Name,
			Email:      demo.Email,
			Password:   hashedPassword,
			Role:       demo.Role,
			Status:     demo.Status,
			Department: demo.Department,
		}
		user.SetCreatedAtUpdatedAt()

		if _, err := repo.CreateUser(ctx, &user); err != nil {
			return nil, err
		}
		seeded = append(seeded, user)
		logger.Info("users.SeedDemoUsers seeded user",
			zap.String(constvars.LoggingEmailKey, user.Email),
			zap.String("role", user.Role),
		)
	}
	return seeded, nil
}
