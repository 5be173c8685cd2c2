package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aceontech/content-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call
// c.Validate(req). Failures come back as *domain.AppError with the status
// split the API guarantees: missing fields are 400, semantic failures 422.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator. Field names in messages use the json tag.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	var missing []string
	for _, fe := range ve {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return domain.NewAppError(
			strings.Join(missing, ",")+" is missing from the body",
			http.StatusBadRequest,
		)
	}

	return domain.NewAppError(fieldError(ve[0]), http.StatusUnprocessableEntity)
}

// fieldError converts a single semantic ValidationError into the message the
// API exposes.
func fieldError(fe validator.FieldError) string {
	switch {
	case fe.Field() == "email" && fe.Tag() == "email":
		return "invalid email address"
	case fe.Field() == "password" && fe.Tag() == "min":
		return "password is too short"
	case fe.Field() == "title" && fe.Tag() == "max":
		return "title is too long"
	default:
		return fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag())
	}
}
