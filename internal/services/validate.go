package services

import (
	"errors"
	"reflect"
	"strings"

	"carpool/internal/domain"

	"github.com/go-playground/validator/v10"
)

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
	return v
}

// validateInput runs the struct's validate tags and reports the first failure
// as a domain.ValidationError carrying msg.
func validateInput(in any, msg string) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domain.ValidationError{Msg: msg, Err: err}
	}
	fe := fieldErrs[0]
	if fe.Tag() != "required" {
		msg = strings.TrimSpace(fe.Field() + " must be " + fe.Tag() + " " + fe.Param())
	}
	return domain.ValidationError{Field: fe.Field(), Msg: msg, Err: err}
}
