package models

type MedicalRecord struct {
	ID          string   `json:"id" bson:"_id"`
	PatientID   string   `json:"patientId" bson:"patientId"`
	DoctorID    string   `json:"doctorId,omitempty" bson:"doctorId,omitempty"`
	Type        string   `json:"type" bson:"type"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Diagnosis   string   `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	Medications []string `json:"medications,omitempty" bson:"medications,omitempty"`
	VisitDate   string   `json:"visitDate" bson:"visitDate"`
	TimeModel   `bson:",inline"`
}

func (r MedicalRecord) GetID() string {
	return r.ID
}
