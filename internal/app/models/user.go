package models

import "medadmin-service/internal/pkg/constvars"

type User struct {
	ID         string `json:"id" bson:"_id"`
	Name       string `json:"name" bson:"name"`
	Email      string `json:"email" bson:"email"`
	Phone      string `json:"phone,omitempty" bson:"phone,omitempty"`
	Password   string `json:"-" bson:"password"`
	Role       string `json:"role" bson:"role"`
	Status     string `json:"status" bson:"status"`
	Department string `json:"department,omitempty" bson:"department,omitempty"`
	TimeModel  `bson:",inline"`
}

func (u User) GetID() string {
	return u.ID
}

func (u *User) IsDisabled() bool {
	return u.Status == constvars.UserStatusDisabled
}
