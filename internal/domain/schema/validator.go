package schema

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/entity"
)

var (
	digitsPattern = regexp.MustCompile(`^[0-9]+$`)
	chargePattern = regexp.MustCompile(`^(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)
)

// FieldErrors maps a field name to its violation message
type FieldErrors map[string]string

// Error lists the violations in form order
func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, name := range entity.FieldNames {
		if msg, ok := e[name]; ok {
			parts = append(parts, name+": "+msg)
		}
	}
	return "invalid prediction request: " + strings.Join(parts, "; ")
}

// Validator checks candidate submissions against the field schema
type Validator struct {
	validate      *validator.Validate
	strictNumeric bool
}

// NewValidator creates a Validator. With strictNumeric the charge fields must
// be non-negative decimals; without it any non-empty string is accepted.
func NewValidator(strictNumeric bool) *Validator {
	v := &Validator{
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		strictNumeric: strictNumeric,
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.validate.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})
	_ = v.validate.RegisterValidation("charge", func(fl validator.FieldLevel) bool {
		if !v.strictNumeric {
			return true
		}
		return chargePattern.MatchString(fl.Field().String())
	})

	return v
}

// StrictNumeric reports whether charge fields must parse as numbers
func (v *Validator) StrictNumeric() bool {
	return v.strictNumeric
}

// Validate checks every field of candidate and reports all violations together.
// Missing fields count as empty. Unknown keys are ignored.
func (v *Validator) Validate(candidate Values) (*entity.PredictionRequest, FieldErrors) {
	var req entity.PredictionRequest
	for _, name := range entity.FieldNames {
		req.Set(name, candidate[name])
	}

	err := v.validate.Struct(&req)
	if err == nil {
		return &req, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable on a programming error in the struct tags.
		panic(fmt.Sprintf("schema: unexpected validation error: %v", err))
	}

	fieldErrs := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := fieldErrs[fe.Field()]; seen {
			continue
		}
		fieldErrs[fe.Field()] = message(fe)
	}
	return nil, fieldErrs
}

func message(fe validator.FieldError) string {
	name := displayName(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "max":
		return "Max " + fe.Param() + " digits"
	case "digits":
		return name + " must contain digits only"
	case "charge":
		return name + " must be a non-negative number"
	case "oneof":
		return "Invalid option"
	default:
		return name + " is invalid"
	}
}

func displayName(field string) string {
	f, ok := Lookup(field)
	if !ok {
		return field
	}
	label := f.Label
	if i := strings.Index(label, " ("); i >= 0 {
		label = label[:i]
	}
	return strings.TrimSuffix(label, "?")
}
