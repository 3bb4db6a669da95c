package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/entity"
)

func TestFields(t *testing.T) {
	fields := Fields()

	require.Len(t, fields, 19)
	for i, name := range entity.FieldNames {
		assert.Equal(t, name, fields[i].Name)
	}
}

func TestFields_DefaultsAreOptions(t *testing.T) {
	for _, f := range Fields() {
		assert.NotEmpty(t, f.Default, f.Name)
		if f.Kind != KindSelect {
			continue
		}
		found := false
		for _, o := range f.Options {
			if o.Value == f.Default {
				found = true
			}
		}
		assert.True(t, found, "default of %s is not an option", f.Name)
	}
}

func TestFields_ReturnsCopy(t *testing.T) {
	fields := Fields()
	fields[0].Label = "changed"

	assert.Equal(t, "Gender", Fields()[0].Label)
}

func TestFields_OptionsAreCopied(t *testing.T) {
	partner, ok := Lookup(entity.FieldPartner)
	require.True(t, ok)
	partner.Options[0].Value = "changed"

	for _, f := range Fields() {
		for _, o := range f.Options {
			assert.NotEqual(t, "changed", o.Value, f.Name)
		}
	}

	sections := Sections()
	sections[1].Fields[0].Options[0].Label = "changed"
	phone, _ := Lookup(entity.FieldPhoneService)
	assert.Equal(t, "Yes", phone.Options[0].Label)
	dependents, _ := Lookup(entity.FieldDependents)
	assert.Equal(t, "Yes", dependents.Options[0].Label)
}

func TestSections_FormLayout(t *testing.T) {
	services := Sections()[1].Fields
	assert.Equal(t, entity.FieldPhoneService, services[0].Name)
	assert.Equal(t, entity.FieldInternetService, services[len(services)-1].Name)
}

func TestSections(t *testing.T) {
	sections := Sections()

	require.Len(t, sections, 3)
	assert.Equal(t, SectionDemographics, sections[0].Section)
	assert.Len(t, sections[0].Fields, 5)
	assert.Equal(t, SectionServices, sections[1].Section)
	assert.Len(t, sections[1].Fields, 9)
	assert.Equal(t, SectionBilling, sections[2].Section)
	assert.Len(t, sections[2].Fields, 5)
}

func TestLookup(t *testing.T) {
	f, ok := Lookup(entity.FieldSeniorCitizen)
	require.True(t, ok)
	assert.Equal(t, []Option{{Value: "0", Label: "No"}, {Value: "1", Label: "Yes"}}, f.Options)

	_, ok = Lookup("customerID")
	assert.False(t, ok)
}
