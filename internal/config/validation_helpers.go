package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

// convertValidationError normalizes validator errors into prism validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return prismerrors.NewValidationError(field, msg, err)
	}

	return prismerrors.NewValidationError("settings", err.Error(), err)
}

// yamlFieldName drops the root struct name from the namespace, which is
// already expressed in yaml key names.
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
