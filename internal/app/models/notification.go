package models

type Notification struct {
	ID        string `json:"id" bson:"_id"`
	UserID    string `json:"userId" bson:"userId"`
	Title     string `json:"title" bson:"title"`
	Message   string `json:"message" bson:"message"`
	Type      string `json:"type" bson:"type"`
	Read      bool   `json:"read" bson:"read"`
	TimeModel `bson:",inline"`
}

func (n Notification) GetID() string {
	return n.ID
}
