package utils

import (
	"medadmin-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	validate          *validator.Validate
	chinaMobileNumber = regexp.MustCompile(constvars.RegexChinaMobileNumber)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("cn_phone", validatePhoneNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateUrlParamID(id string) error {
	_, err := uuid.Parse(id)
	return err
}

// ValidatePassword reports whether password meets the minimum length.
func ValidatePassword(password string) bool {
	return utf8.RuneCountInString(password) >= constvars.MinPasswordLength
}

// ValidatePhoneNumber reports whether phone is an 11-digit mainland mobile number.
func ValidatePhoneNumber(phone string) bool {
	return chinaMobileNumber.MatchString(phone)
}

func validatePassword(fl validator.FieldLevel) bool {
	return ValidatePassword(fl.Field().String())
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return ValidatePhoneNumber(fl.Field().String())
}
