package cli

import (
	"reflect"
	"strings"

	"github.com/super-sam-code/VyaparTracker/internal/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, max=100 work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// validateRequest runs go-playground/validator tags against req and converts
// failures into the validation error class, so bad form input never reaches
// the store.
func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.New(apperror.ErrValidation, err.Error())
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fe.Field()+" ("+fe.Tag()+")")
	}
	return apperror.Newf(apperror.ErrValidation, "invalid fields: %s", strings.Join(parts, ", "))
}
