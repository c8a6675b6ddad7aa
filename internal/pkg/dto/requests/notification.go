package requests

type UpdateNotification struct {
	Read *bool `json:"read" validate:"required"`
}

type CreateNotification struct {
	UserID  string
	Title   string
	Message string
	Type    string
}
