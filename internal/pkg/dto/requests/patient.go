package requests

type EmergencyContact struct {
	Name         string `json:"name" validate:"required,max=64"`
	Relationship string `json:"relationship" validate:"max=32"`
	Phone        string `json:"phone" validate:"cn_phone"`
}

type CreatePatient struct {
	Name             string            `json:"name" validate:"required,max=100"`
	Gender           string            `json:"gender" validate:"required,oneof=male female other"`
	BirthDate        string            `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Phone            string            `json:"phone" validate:"omitempty,cn_phone"`
	Email            string            `json:"email" validate:"omitempty,email"`
	Address          string            `json:"address" validate:"max=255"`
	BloodType        string            `json:"bloodType" validate:"omitempty,oneof=A B AB O A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies        []string          `json:"allergies" validate:"omitempty,dive,required,max=64"`
	Status           string            `json:"status" validate:"omitempty,oneof=active inactive discharged"`
	AssignedDoctorID string            `json:"assignedDoctorId"`
	EmergencyContact *EmergencyContact `json:"emergencyContact" validate:"omitempty"`
}

// UpdatePatient carries a partial update, nil fields are left untouched.
type UpdatePatient struct {
	Name             *string           `json:"name" validate:"omitempty,max=100"`
	Gender           *string           `json:"gender" validate:"omitempty,oneof=male female other"`
	BirthDate        *string           `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Phone            *string           `json:"phone" validate:"omitempty,cn_phone"`
	Email            *string           `json:"email" validate:"omitempty,email"`
	Address          *string           `json:"address" validate:"omitempty,max=255"`
	BloodType        *string           `json:"bloodType" validate:"omitempty,oneof=A B AB O A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies        []string          `json:"allergies" validate:"omitempty,dive,required,max=64"`
	Status           *string           `json:"status" validate:"omitempty,oneof=active inactive discharged"`
	AssignedDoctorID *string           `json:"assignedDoctorId"`
	EmergencyContact *EmergencyContact `json:"emergencyContact" validate:"omitempty"`
}

type PatientFilter struct {
	Status string
	Search string
}
