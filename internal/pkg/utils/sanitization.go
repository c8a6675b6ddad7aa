package utils

import (
	"medadmin-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	if input == nil {
		return nil
	}
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func sanitizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func trimStringPointer(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = sanitizeEmail(input.Email)
}

func SanitizeRegisterRequest(input *requests.Register) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = sanitizeEmail(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Role = strings.TrimSpace(strings.ToLower(input.Role))
	input.Department = strings.TrimSpace(input.Department)
}

func SanitizeForgotPasswordRequest(input *requests.ForgotPassword) {
	input.Email = sanitizeEmail(input.Email)
}

func SanitizeResetPasswordRequest(input *requests.ResetPassword) {
	input.Token = strings.TrimSpace(input.Token)
}

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.Name = strings.TrimSpace(input.Name)
	input.Gender = strings.TrimSpace(strings.ToLower(input.Gender))
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = sanitizeEmail(input.Email)
	input.Address = strings.TrimSpace(input.Address)
	input.BloodType = strings.TrimSpace(strings.ToUpper(input.BloodType))
	input.Status = strings.TrimSpace(strings.ToLower(input.Status))
	input.AssignedDoctorID = strings.TrimSpace(input.AssignedDoctorID)
	input.Allergies = cleanWhiteSpaceFromEachStringOfAnArray(input.Allergies)
	if input.EmergencyContact != nil {
		input.EmergencyContact.Name = strings.TrimSpace(input.EmergencyContact.Name)
		input.EmergencyContact.Phone = strings.TrimSpace(input.EmergencyContact.Phone)
	}
}

func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	trimStringPointer(input.Name)
	trimStringPointer(input.Gender)
	trimStringPointer(input.BirthDate)
	trimStringPointer(input.Phone)
	trimStringPointer(input.Address)
	trimStringPointer(input.BloodType)
	trimStringPointer(input.Status)
	trimStringPointer(input.AssignedDoctorID)
	if input.Email != nil {
		*input.Email = sanitizeEmail(*input.Email)
	}
	input.Allergies = cleanWhiteSpaceFromEachStringOfAnArray(input.Allergies)
}

func SanitizeCreateMedicalRecordRequest(input *requests.CreateMedicalRecord) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Type = strings.TrimSpace(strings.ToLower(input.Type))
	input.Title = strings.TrimSpace(input.Title)
	input.Diagnosis = strings.TrimSpace(input.Diagnosis)
	input.VisitDate = strings.TrimSpace(input.VisitDate)
	input.Medications = cleanWhiteSpaceFromEachStringOfAnArray(input.Medications)
}

func SanitizeUpdateMedicalRecordRequest(input *requests.UpdateMedicalRecord) {
	trimStringPointer(input.Type)
	trimStringPointer(input.Title)
	trimStringPointer(input.Diagnosis)
	trimStringPointer(input.VisitDate)
	input.Medications = cleanWhiteSpaceFromEachStringOfAnArray(input.Medications)
}

func SanitizeTranslateBatchRequest(input *requests.TranslateBatch) {
	input.TargetLanguage = strings.TrimSpace(input.TargetLanguage)
	input.SourceLanguage = strings.TrimSpace(input.SourceLanguage)
}
