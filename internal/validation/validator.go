package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	deckerrors "github.com/alexisbeaulieu97/deck/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	diagramIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
)

// Validator returns the shared validator used by the settings and catalog loaders.
// Field names in reported errors follow the yaml tags.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("diagram_id", func(fl validator.FieldLevel) bool {
			return diagramIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates s and converts the first failure into a ValidationError.
func Struct(s any) error {
	return Convert(Validator().Struct(s))
}

// Convert maps validator output onto deck's ValidationError.
func Convert(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := fieldPath(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, fe.Tag(), fe.Param())
		}
		return deckerrors.NewValidationError(field, msg, err)
	}

	return deckerrors.NewValidationError("", err.Error(), err)
}

// fieldPath drops the root struct name from the namespace, so
// "document.diagrams[1].id" becomes "diagrams[1].id".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
