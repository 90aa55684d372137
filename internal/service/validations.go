package service

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	errorvalues "github.com/limbo/hydration/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Decimals are validated through their string form
		validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})
		validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		validate.RegisterValidation("decimal_gt", func(fl validator.FieldLevel) bool {
			value, param, ok := decimalWithParam(fl)
			return ok && value.GreaterThan(param)
		})
		validate.RegisterValidation("decimal_lt", func(fl validator.FieldLevel) bool {
			value, param, ok := decimalWithParam(fl)
			return ok && value.LessThan(param)
		})
		// Maximum count of digits after the point
		validate.RegisterValidation("decimal_scale", func(fl validator.FieldLevel) bool {
			value, err := decimal.NewFromString(fl.Field().String())
			if err != nil {
				return false
			}
			places, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return value.Equal(value.Truncate(int32(places)))
		})
	})
}

func decimalWithParam(fl validator.FieldLevel) (decimal.Decimal, decimal.Decimal, bool) {
	value, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Zero, decimal.Zero, false
	}
	param, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return decimal.Zero, decimal.Zero, false
	}
	return value, param, true
}

// validateStruct wraps validation failures into ErrValidation, keeping field errors
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		joined := []error{errorvalues.ErrValidation}
		for _, fieldErr := range validationErrors {
			joined = append(joined, fieldErr)
		}
		return errors.Join(joined...)
	}
	return errors.New("validation unexpected error: " + err.Error())
}
