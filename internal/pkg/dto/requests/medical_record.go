package requests

type CreateMedicalRecord struct {
	PatientID   string   `json:"patientId" validate:"required,uuid"`
	DoctorID    string   `json:"doctorId"`
	Type        string   `json:"type" validate:"required,oneof=diagnosis prescription lab_result imaging note"`
	Title       string   `json:"title" validate:"required,max=128"`
	Description string   `json:"description" validate:"max=4000"`
	Diagnosis   string   `json:"diagnosis" validate:"max=512"`
	Medications []string `json:"medications" validate:"omitempty,dive,required,max=128"`
	VisitDate   string   `json:"visitDate" validate:"required,datetime=2006-01-02"`
}

type UpdateMedicalRecord struct {
	Type        *string  `json:"type" validate:"omitempty,oneof=diagnosis prescription lab_result imaging note"`
	Title       *string  `json:"title" validate:"omitempty,max=128"`
	Description *string  `json:"description" validate:"omitempty,max=4000"`
	Diagnosis   *string  `json:"diagnosis" validate:"omitempty,max=512"`
	Medications []string `json:"medications" validate:"omitempty,dive,required,max=128"`
	VisitDate   *string  `json:"visitDate" validate:"omitempty,datetime=2006-01-02"`
}

type MedicalRecordFilter struct {
	PatientID string
}
