package utils

import (
	"medadmin-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLoginRequest(t *testing.T) {
	request := &requests.Login{
		Email:    "  DOCTOR@YanYuCloud.com  ",
		Password: " doctor123 ",
	}

	SanitizeLoginRequest(request)

	assert.Equal(t, "doctor@yanyucloud.com", request.Email, "email should be lowercase and trimmed")
	assert.Equal(t, " doctor123 ", request.Password, "password must be left untouched")
}

func TestSanitizeRegisterRequest(t *testing.T) {
	request := &requests.Register{
		Name:       "  Li Wei ",
		Email:      " LI.WEI@EXAMPLE.COM",
		Phone:      " 13800138000 ",
		Role:       " Doctor ",
		Department: " Cardiology ",
	}

	SanitizeRegisterRequest(request)

	assert.Equal(t, "Li Wei", request.Name)
	assert.Equal(t, "li.wei@example.com", request.Email)
	assert.Equal(t, "13800138000", request.Phone)
	assert.Equal(t, "doctor", request.Role)
	assert.Equal(t, "Cardiology", request.Department)
}

func TestSanitizeCreatePatientRequest(t *testing.T) {
	t.Run("Trims and normalizes case", func(t *testing.T) {
		request := &requests.CreatePatient{
			Name:      " Zhang San ",
			Gender:    " Male",
			BloodType: "ab+",
			Status:    "ACTIVE ",
			Allergies: []string{"  penicillin ", " peanuts"},
			EmergencyContact: &requests.EmergencyContact{
				Name:  " Zhang Si ",
				Phone: " 13900139000",
			},
		}

		SanitizeCreatePatientRequest(request)

		assert.Equal(t, "Zhang San", request.Name)
		assert.Equal(t, "male", request.Gender)
		assert.Equal(t, "AB+", request.BloodType)
		assert.Equal(t, "active", request.Status)
		assert.Equal(t, []string{"penicillin", "peanuts"}, request.Allergies)
		assert.Equal(t, "Zhang Si", request.EmergencyContact.Name)
		assert.Equal(t, "13900139000", request.EmergencyContact.Phone)
	})

	t.Run("Nil allergies stay nil", func(t *testing.T) {
		request := &requests.CreatePatient{Name: "A"}

		SanitizeCreatePatientRequest(request)

		assert.Nil(t, request.Allergies)
	})
}

func TestSanitizeUpdatePatientRequest(t *testing.T) {
	name := "  Wang Wu "
	email := " WANG@EXAMPLE.COM "
	request := &requests.UpdatePatient{Name: &name, Email: &email}

	SanitizeUpdatePatientRequest(request)

	assert.Equal(t, "Wang Wu", *request.Name)
	assert.Equal(t, "wang@example.com", *request.Email)
	assert.Nil(t, request.Phone)
}
