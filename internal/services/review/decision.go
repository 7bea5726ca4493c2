package review

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FraudCategories are the categories a fraudulent verdict may carry.
var FraudCategories = []string{
	"under-scanning",
	"missing-item",
	"fake-barcode",
	"cash-theft",
	"unauthorized-override",
	"sweethearting",
}

// DecisionForm is what the reviewer fills in before submitting.
type DecisionForm struct {
	Status        string `json:"status" validate:"required,oneof=genuine fraudulent suspicious"`
	FraudCategory string `json:"fraud_category" validate:"required_if=Status fraudulent,fraudcategory"`
	Notes         string `json:"notes" validate:"max=4000"`
}

var ErrValidation = errors.New("invalid decision")

// ValidationError maps form fields to the rule they broke.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("fraudcategory", func(fl validator.FieldLevel) bool {
		c := fl.Field().String()
		if c == "" {
			return true
		}
		for _, known := range FraudCategories {
			if c == known {
				return true
			}
		}
		return false
	})
	return v
}

// Validate checks the form locally. Nothing is sent upstream when it fails.
func (f DecisionForm) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return &ValidationError{Fields: fields}
}
