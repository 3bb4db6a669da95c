// Package schema describes the prediction form fields and validates submissions against them.
package schema

import (
	"net/url"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/entity"
)

// Kind is how a field is entered
type Kind string

const (
	KindSelect Kind = "select"
	KindNumber Kind = "number"
)

// Section groups fields on the form
type Section string

const (
	SectionDemographics Section = "Demographics"
	SectionServices     Section = "Services"
	SectionBilling      Section = "Contract & Billing"
)

// Option is one allowed value of a select field
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one form field
type Field struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Section     Section  `json:"section"`
	Kind        Kind     `json:"kind"`
	Options     []Option `json:"options,omitempty"`
	Default     string   `json:"default"`
	Placeholder string   `json:"placeholder,omitempty"`
	Step        string   `json:"step,omitempty"`
	Min         string   `json:"min,omitempty"`
	Max         string   `json:"max,omitempty"`
}

// Values is a raw candidate submission keyed by field name
type Values map[string]string

// FromURLValues takes the first value of each key
func FromURLValues(v url.Values) Values {
	out := make(Values, len(v))
	for k := range v {
		out[k] = v.Get(k)
	}
	return out
}

var (
	yesNo = []Option{{"Yes", "Yes"}, {"No", "No"}}

	fields = []Field{
		selectField(entity.FieldGender, "Gender", SectionDemographics, []Option{{"Male", "Male"}, {"Female", "Female"}}),
		selectField(entity.FieldSeniorCitizen, "Senior Citizen", SectionDemographics, []Option{{"0", "No"}, {"1", "Yes"}}),
		selectField(entity.FieldPartner, "Has Partner?", SectionDemographics, yesNo),
		selectField(entity.FieldDependents, "Has Dependents?", SectionDemographics, yesNo),
		{Name: entity.FieldTenure, Label: "Tenure (months)", Section: SectionDemographics, Kind: KindNumber, Placeholder: "0–72", Min: "0", Max: "72"},

		selectField(entity.FieldPhoneService, "Phone Service", SectionServices, yesNo),
		selectField(entity.FieldMultipleLines, "Multiple Lines", SectionServices, yesNo),
		selectField(entity.FieldOnlineSecurity, "Online Security", SectionServices, yesNo),
		selectField(entity.FieldOnlineBackup, "Online Backup", SectionServices, yesNo),
		selectField(entity.FieldDeviceProtection, "Device Protection", SectionServices, yesNo),
		selectField(entity.FieldTechSupport, "Tech Support", SectionServices, yesNo),
		selectField(entity.FieldStreamingTV, "Streaming TV", SectionServices, yesNo),
		selectField(entity.FieldStreamingMovies, "Streaming Movies", SectionServices, yesNo),
		selectField(entity.FieldInternetService, "Internet Service", SectionServices,
			[]Option{{"Fiber optic", "Fiber optic"}, {"DSL", "DSL"}, {"No", "No"}}),

		selectField(entity.FieldContract, "Contract Type", SectionBilling,
			[]Option{{"Month-to-month", "Month-to-month"}, {"One year", "One year"}, {"Two year", "Two year"}}),
		selectField(entity.FieldPaperlessBilling, "Paperless Billing", SectionBilling, yesNo),
		selectField(entity.FieldPaymentMethod, "Payment Method", SectionBilling, []Option{
			{"Electronic check", "Electronic check"},
			{"Mailed check", "Mailed check"},
			{"Bank transfer (automatic)", "Bank transfer (automatic)"},
			{"Credit card (automatic)", "Credit card (automatic)"},
		}),
		{Name: entity.FieldMonthlyCharges, Label: "Monthly Charges ($)", Section: SectionBilling, Kind: KindNumber, Placeholder: "e.g. 70.50", Step: "0.01"},
		{Name: entity.FieldTotalCharges, Label: "Total Charges ($)", Section: SectionBilling, Kind: KindNumber, Placeholder: "e.g. 840.00", Step: "0.01"},
	}
)

func init() {
	defaults := entity.DefaultPredictionRequest()
	for i := range fields {
		fields[i].Default, _ = defaults.Get(fields[i].Name)
	}
}

func selectField(name, label string, section Section, options []Option) Field {
	return Field{Name: name, Label: label, Section: section, Kind: KindSelect, Options: options}
}

// Fields returns a copy of all field definitions in canonical order,
// the order of entity.FieldNames.
func Fields() []Field {
	out := make([]Field, 0, len(entity.FieldNames))
	for _, name := range entity.FieldNames {
		f, _ := Lookup(name)
		out = append(out, f)
	}
	return out
}

// Sections returns copies of the fields grouped by section, in the order
// the form page lays them out.
func Sections() []SectionFields {
	order := []Section{SectionDemographics, SectionServices, SectionBilling}
	out := make([]SectionFields, 0, len(order))
	for _, s := range order {
		group := SectionFields{Section: s}
		for _, f := range fields {
			if f.Section == s {
				group.Fields = append(group.Fields, f.clone())
			}
		}
		out = append(out, group)
	}
	return out
}

// SectionFields is one titled group of fields
type SectionFields struct {
	Section Section `json:"section"`
	Fields  []Field `json:"fields"`
}

// Lookup returns the definition of the named field
func Lookup(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f.clone(), true
		}
	}
	return Field{}, false
}

func (f Field) clone() Field {
	if f.Options != nil {
		f.Options = append([]Option(nil), f.Options...)
	}
	return f
}

// Defaults returns the starting values of the form
func Defaults() entity.PredictionRequest {
	return entity.DefaultPredictionRequest()
}
