package helpers

import (
	"fmt"
	"log"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
)

var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		log.Fatalf("newValidator: notblank: %v", err)
	}
	if err := v.RegisterValidation("password_policy", func(fl validator.FieldLevel) bool {
		return PasswordMeetsPolicy(fl.Field().String())
	}); err != nil {
		log.Fatalf("newValidator: password_policy: %v", err)
	}
	return v
}

// PasswordMeetsPolicy requires 12 characters with upper, lower, digit and symbol.
func PasswordMeetsPolicy(password string) bool {
	if len([]rune(password)) < 12 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			upper = true
		case unicode.IsLower(c):
			lower = true
		case unicode.IsDigit(c):
			digit = true
		case !unicode.IsLetter(c) && !unicode.IsSpace(c):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := lowerFirst(err.Field())
		switch err.Tag() {
		case "required", "notblank":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s must be a valid email address.", err.Field())
		case "numeric", "number":
			errorMessages[field] = fmt.Sprintf("%s must be a number.", err.Field())
		case "min", "gte":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", err.Field(), err.Param())
		case "max", "lte":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s.", err.Field(), err.Param())
		case "oneof":
			errorMessages[field] = fmt.Sprintf("%s must be one of: %s.", err.Field(), err.Param())
		case "password_policy":
			errorMessages[field] = "Password must be at least 12 characters and contain upper and lower case letters, a digit and a symbol."
		default:
			errorMessages[field] = fmt.Sprintf("%s failed the %s check.", err.Field(), err.Tag())
		}
	}
	return errorMessages
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	if err != nil {
		log.Printf("PasswordCompare: password does not match or error: %v", err)
		return false
	}
	return true
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

func GenerateSlug(s string) string {
	return slug.Make(s)
}
