package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	timeslotPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)
	phonePattern    = regexp.MustCompile(`^\+?[0-9()\s.-]*[0-9][0-9()\s.-]*$`)

	validate = newValidator()
)

// FieldError ошибка валидации одного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors список ошибок по полям, реализует error
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Имена полей в ошибках берем из json-тегов
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// timeslot: время слота в формате HH:MM или HH:MM:SS
	_ = v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return timeslotPattern.MatchString(fl.Field().String())
	})

	// dateformat: календарная дата в формате YYYY-MM-DD
	_ = v.RegisterValidation("dateformat", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})

	// phonepattern: цифры и общепринятые разделители, минимум одна цифра
	_ = v.RegisterValidation("phonepattern", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return v
}

// ValidateStruct валидирует структуру по validate-тегам.
// Возвращает FieldErrors, пригодные для ответа 422.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fieldErrors := make(FieldErrors, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}

	return fieldErrors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "timeslot":
		return "must be a valid time in HH:MM format"
	case "dateformat":
		return "must be a valid date in YYYY-MM-DD format"
	case "phonepattern":
		return "must be a valid phone number"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation on %s", fe.Tag())
	}
}
