package http

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lms-api/internal/application/dto"
)

const passwordSpecials = "@$!%*?&"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return StrongPassword(fl.Field().String())
	})
	return v
}

// StrongPassword al menos 6 caracteres con mayúscula, minúscula, dígito y un especial de @$!%*?&.
// Solo se admiten letras ASCII, dígitos y esos especiales.
func StrongPassword(s string) bool {
	if len(s) < 6 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case r > unicode.MaxASCII:
			return false
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return upper && lower && digit && special
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "url":
		return fe.Field() + " must be a valid URL"
	case "strongpassword":
		return "Password must contain at least one uppercase, one lowercase, one number, and one special character"
	}
	return fe.Field() + " is invalid"
}

// validateStruct devuelve un HTTPError 400 con los errores por campo.
func validateStruct(in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewError(fiber.StatusBadRequest, msgInvalidInput)
	}
	out := dto.ValidationErrors{Errors: make([]dto.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, dto.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return &HTTPError{Status: fiber.StatusBadRequest, Message: msgValidation, Data: out}
}

// bind parsea el body JSON y lo valida.
func bind(c *fiber.Ctx, in interface{}) error {
	if err := c.BodyParser(in); err != nil {
		return NewError(fiber.StatusBadRequest, msgInvalidInput)
	}
	return validateStruct(in)
}
