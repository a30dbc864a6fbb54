package gradient

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// validatorInstance configures and returns the validator shared by Validate.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
			return hexColorPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("gradient_type", func(fl validator.FieldLevel) bool {
			return Type(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
			return Direction(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("easing", func(fl validator.FieldLevel) bool {
			return Easing(fl.Field().String()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks that s is within the editor's limits: known enums, 2 to 10
// stops with #rrggbb colors, positions in [0,100], opacities in [0,1], an
// angle in [0,360] and a saturation adjustment in [-50,50].
//
// The pipeline itself accepts anything; Validate is applied to gradients read
// from outside the program.
func Validate(s State) error {
	return convertValidationError(validatorInstance().Struct(s))
}

// convertValidationError normalizes validator errors into prism validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := FieldName(ve.StructNamespace())
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s (%s)", msg, ve.Param())
		}
		return prismerrors.NewValidationError(field, msg, err)
	}

	return prismerrors.NewValidationError("gradient", err.Error(), err)
}

// FieldName converts a struct namespace such as "State.ColorStops[1].Color"
// into the document key path "colorStops[1].color".
func FieldName(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = lowerFirst(part)
	}
	return strings.Join(parts, ".")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
