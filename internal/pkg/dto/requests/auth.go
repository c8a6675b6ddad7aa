package requests

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Register struct {
	Name            string `json:"name" validate:"required,max=64"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"cn_phone"`
	Password        string `json:"password" validate:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role" validate:"omitempty,oneof=admin doctor nurse"`
	Department      string `json:"department" validate:"max=64"`
}

type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPassword struct {
	Token           string `json:"token" validate:"required,uuid"`
	Password        string `json:"password" validate:"password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}
