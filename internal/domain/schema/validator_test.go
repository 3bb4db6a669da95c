package schema

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/entity"
)

func defaultValues() Values {
	d := Defaults()
	return FromURLValues(d.FormValues())
}

func TestValidator_Defaults(t *testing.T) {
	for _, strict := range []bool{true, false} {
		req, errs := NewValidator(strict).Validate(defaultValues())

		assert.Nil(t, errs)
		require.NotNil(t, req)
		assert.Equal(t, entity.DefaultPredictionRequest(), *req)
	}
}

func TestValidator_MissingField(t *testing.T) {
	v := NewValidator(true)

	for _, name := range entity.FieldNames {
		t.Run(name, func(t *testing.T) {
			candidate := defaultValues()
			delete(candidate, name)

			req, errs := v.Validate(candidate)

			assert.Nil(t, req)
			require.Len(t, errs, 1)
			assert.Contains(t, errs[name], "is required")
		})
	}
}

func TestValidator_OutOfDomain(t *testing.T) {
	v := NewValidator(true)

	for _, f := range Fields() {
		t.Run(f.Name, func(t *testing.T) {
			candidate := defaultValues()
			candidate[f.Name] = "Maybe"

			req, errs := v.Validate(candidate)

			assert.Nil(t, req)
			require.Contains(t, errs, f.Name)
			assert.Len(t, errs, 1)
		})
	}
}

func TestValidator_CollectsAllErrors(t *testing.T) {
	candidate := defaultValues()
	candidate[entity.FieldGender] = "male"
	candidate[entity.FieldTenure] = "123"
	candidate[entity.FieldContract] = "Three year"
	delete(candidate, entity.FieldTotalCharges)

	_, errs := NewValidator(true).Validate(candidate)

	require.Len(t, errs, 4)
	assert.Equal(t, "Invalid option", errs[entity.FieldGender])
	assert.Equal(t, "Max 2 digits", errs[entity.FieldTenure])
	assert.Equal(t, "Invalid option", errs[entity.FieldContract])
	assert.Equal(t, "Total Charges is required", errs[entity.FieldTotalCharges])
	assert.Contains(t, errs.Error(), "gender: Invalid option; tenure: Max 2 digits")
}

func TestValidator_Tenure(t *testing.T) {
	v := NewValidator(true)

	tests := []struct {
		value string
		msg   string
	}{
		{"0", ""},
		{"7", ""},
		{"72", ""},
		{"", "Tenure is required"},
		{"100", "Max 2 digits"},
		{"1a", "Tenure must contain digits only"},
		{"-1", "Tenure must contain digits only"},
		{"٣", "Tenure must contain digits only"},
	}

	for _, tt := range tests {
		candidate := defaultValues()
		candidate[entity.FieldTenure] = tt.value

		_, errs := v.Validate(candidate)

		assert.Equal(t, tt.msg, errs[entity.FieldTenure], "tenure %q", tt.value)
	}
}

func TestValidator_Charges(t *testing.T) {
	t.Run("strict mode requires non-negative decimals", func(t *testing.T) {
		v := NewValidator(true)

		for _, ok := range []string{"0", "70.50", "840.", ".5", "8684.8"} {
			candidate := defaultValues()
			candidate[entity.FieldMonthlyCharges] = ok
			_, errs := v.Validate(candidate)
			assert.Nil(t, errs, ok)
		}

		for _, bad := range []string{"abc", "-5", "1e3", "NaN", " 70", "1,200.00"} {
			candidate := defaultValues()
			candidate[entity.FieldTotalCharges] = bad
			_, errs := v.Validate(candidate)
			assert.Equal(t, "Total Charges must be a non-negative number", errs[entity.FieldTotalCharges], bad)
		}
	})

	t.Run("lenient mode accepts any non-empty string", func(t *testing.T) {
		v := NewValidator(false)
		assert.False(t, v.StrictNumeric())

		candidate := defaultValues()
		candidate[entity.FieldMonthlyCharges] = "abc"
		req, errs := v.Validate(candidate)
		assert.Nil(t, errs)
		require.NotNil(t, req)
		assert.Equal(t, "abc", req.MonthlyCharges)

		candidate[entity.FieldMonthlyCharges] = ""
		_, errs = v.Validate(candidate)
		assert.Equal(t, "Monthly Charges is required", errs[entity.FieldMonthlyCharges])
	})
}

func TestValidator_MultiWordOptions(t *testing.T) {
	v := NewValidator(true)

	for _, method := range []string{"Electronic check", "Mailed check", "Bank transfer (automatic)", "Credit card (automatic)"} {
		candidate := defaultValues()
		candidate[entity.FieldPaymentMethod] = method
		_, errs := v.Validate(candidate)
		assert.Nil(t, errs, method)
	}

	candidate := defaultValues()
	candidate[entity.FieldPaymentMethod] = "Bank transfer"
	_, errs := v.Validate(candidate)
	assert.Equal(t, "Invalid option", errs[entity.FieldPaymentMethod])
}

func TestValidator_IgnoresUnknownKeys(t *testing.T) {
	candidate := defaultValues()
	candidate["customerID"] = "CX-4821"

	req, errs := NewValidator(true).Validate(candidate)

	assert.Nil(t, errs)
	require.NotNil(t, req)
	assert.Len(t, req.FormValues(), 19)
}

func TestFromURLValues(t *testing.T) {
	values := FromURLValues(url.Values{"gender": {"Female", "Male"}, "tenure": {"3"}})

	assert.Equal(t, "Female", values["gender"])
	assert.Equal(t, "3", values["tenure"])
}
