package models

type EmergencyContact struct {
	Name         string `json:"name" bson:"name"`
	Relationship string `json:"relationship,omitempty" bson:"relationship,omitempty"`
	Phone        string `json:"phone" bson:"phone"`
}

type Patient struct {
	ID               string            `json:"id" bson:"_id"`
	Name             string            `json:"name" bson:"name"`
	Gender           string            `json:"gender" bson:"gender"`
	BirthDate        string            `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	Phone            string            `json:"phone,omitempty" bson:"phone,omitempty"`
	Email            string            `json:"email,omitempty" bson:"email,omitempty"`
	Address          string            `json:"address,omitempty" bson:"address,omitempty"`
	BloodType        string            `json:"bloodType,omitempty" bson:"bloodType,omitempty"`
	Allergies        []string          `json:"allergies,omitempty" bson:"allergies,omitempty"`
	Status           string            `json:"status" bson:"status"`
	AssignedDoctorID string            `json:"assignedDoctorId,omitempty" bson:"assignedDoctorId,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`
	TimeModel        `bson:",inline"`
}

func (p Patient) GetID() string {
	return p.ID
}
