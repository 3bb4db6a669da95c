package entity

import (
	"net/url"
	"strconv"
)

// Field names as sent to the inference service
const (
	FieldGender           = "gender"
	FieldSeniorCitizen    = "SeniorCitizen"
	FieldPartner          = "Partner"
	FieldDependents       = "Dependents"
	FieldTenure           = "tenure"
	FieldPhoneService     = "PhoneService"
	FieldMultipleLines    = "MultipleLines"
	FieldInternetService  = "InternetService"
	FieldOnlineSecurity   = "OnlineSecurity"
	FieldOnlineBackup     = "OnlineBackup"
	FieldDeviceProtection = "DeviceProtection"
	FieldTechSupport      = "TechSupport"
	FieldStreamingTV      = "StreamingTV"
	FieldStreamingMovies  = "StreamingMovies"
	FieldContract         = "Contract"
	FieldPaperlessBilling = "PaperlessBilling"
	FieldPaymentMethod    = "PaymentMethod"
	FieldMonthlyCharges   = "MonthlyCharges"
	FieldTotalCharges     = "TotalCharges"
)

// FieldNames lists the 19 request fields in form order
var FieldNames = []string{
	FieldGender,
	FieldSeniorCitizen,
	FieldPartner,
	FieldDependents,
	FieldTenure,
	FieldPhoneService,
	FieldMultipleLines,
	FieldInternetService,
	FieldOnlineSecurity,
	FieldOnlineBackup,
	FieldDeviceProtection,
	FieldTechSupport,
	FieldStreamingTV,
	FieldStreamingMovies,
	FieldContract,
	FieldPaperlessBilling,
	FieldPaymentMethod,
	FieldMonthlyCharges,
	FieldTotalCharges,
}

// PredictionRequest is one customer's attributes as submitted for scoring.
// All values travel as strings; the inference service does the typing.
type PredictionRequest struct {
	Gender           string `json:"gender" form:"gender" validate:"required,oneof=Male Female"`
	SeniorCitizen    string `json:"SeniorCitizen" form:"SeniorCitizen" validate:"required,oneof=0 1"`
	Partner          string `json:"Partner" form:"Partner" validate:"required,oneof=Yes No"`
	Dependents       string `json:"Dependents" form:"Dependents" validate:"required,oneof=Yes No"`
	Tenure           string `json:"tenure" form:"tenure" validate:"required,max=2,digits"`
	PhoneService     string `json:"PhoneService" form:"PhoneService" validate:"required,oneof=Yes No"`
	MultipleLines    string `json:"MultipleLines" form:"MultipleLines" validate:"required,oneof=Yes No"`
	InternetService  string `json:"InternetService" form:"InternetService" validate:"required,oneof='Fiber optic' DSL No"`
	OnlineSecurity   string `json:"OnlineSecurity" form:"OnlineSecurity" validate:"required,oneof=Yes No"`
	OnlineBackup     string `json:"OnlineBackup" form:"OnlineBackup" validate:"required,oneof=Yes No"`
	DeviceProtection string `json:"DeviceProtection" form:"DeviceProtection" validate:"required,oneof=Yes No"`
	TechSupport      string `json:"TechSupport" form:"TechSupport" validate:"required,oneof=Yes No"`
	StreamingTV      string `json:"StreamingTV" form:"StreamingTV" validate:"required,oneof=Yes No"`
	StreamingMovies  string `json:"StreamingMovies" form:"StreamingMovies" validate:"required,oneof=Yes No"`
	Contract         string `json:"Contract" form:"Contract" validate:"required,oneof=Month-to-month 'One year' 'Two year'"`
	PaperlessBilling string `json:"PaperlessBilling" form:"PaperlessBilling" validate:"required,oneof=Yes No"`
	PaymentMethod    string `json:"PaymentMethod" form:"PaymentMethod" validate:"required,oneof='Electronic check' 'Mailed check' 'Bank transfer (automatic)' 'Credit card (automatic)'"`
	MonthlyCharges   string `json:"MonthlyCharges" form:"MonthlyCharges" validate:"required,charge"`
	TotalCharges     string `json:"TotalCharges" form:"TotalCharges" validate:"required,charge"`
}

// DefaultPredictionRequest returns the values a fresh form starts with.
// They pass validation, so an untouched form is submittable.
func DefaultPredictionRequest() PredictionRequest {
	return PredictionRequest{
		Gender:           "Male",
		SeniorCitizen:    "0",
		Partner:          "No",
		Dependents:       "No",
		Tenure:           "2",
		PhoneService:     "Yes",
		MultipleLines:    "Yes",
		InternetService:  "Fiber optic",
		OnlineSecurity:   "No",
		OnlineBackup:     "No",
		DeviceProtection: "No",
		TechSupport:      "No",
		StreamingTV:      "Yes",
		StreamingMovies:  "Yes",
		Contract:         "Month-to-month",
		PaperlessBilling: "Yes",
		PaymentMethod:    "Electronic check",
		MonthlyCharges:   "110",
		TotalCharges:     "220",
	}
}

// Get returns the value of the named field and whether the name is known
func (r *PredictionRequest) Get(name string) (string, bool) {
	p := r.field(name)
	if p == nil {
		return "", false
	}
	return *p, true
}

// Set assigns the named field. Unknown names are ignored and reported as false.
func (r *PredictionRequest) Set(name, value string) bool {
	p := r.field(name)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// FormValues flattens the request into exactly one key per field
func (r *PredictionRequest) FormValues() url.Values {
	values := make(url.Values, len(FieldNames))
	for _, name := range FieldNames {
		v, _ := r.Get(name)
		values.Set(name, v)
	}
	return values
}

func (r *PredictionRequest) field(name string) *string {
	switch name {
	case FieldGender:
		return &r.Gender
	case FieldSeniorCitizen:
		return &r.SeniorCitizen
	case FieldPartner:
		return &r.Partner
	case FieldDependents:
		return &r.Dependents
	case FieldTenure:
		return &r.Tenure
	case FieldPhoneService:
		return &r.PhoneService
	case FieldMultipleLines:
		return &r.MultipleLines
	case FieldInternetService:
		return &r.InternetService
	case FieldOnlineSecurity:
		return &r.OnlineSecurity
	case FieldOnlineBackup:
		return &r.OnlineBackup
	case FieldDeviceProtection:
		return &r.DeviceProtection
	case FieldTechSupport:
		return &r.TechSupport
	case FieldStreamingTV:
		return &r.StreamingTV
	case FieldStreamingMovies:
		return &r.StreamingMovies
	case FieldContract:
		return &r.Contract
	case FieldPaperlessBilling:
		return &r.PaperlessBilling
	case FieldPaymentMethod:
		return &r.PaymentMethod
	case FieldMonthlyCharges:
		return &r.MonthlyCharges
	case FieldTotalCharges:
		return &r.TotalCharges
	}
	return nil
}

// PredictionResponse is the inference service's answer
type PredictionResponse struct {
	Prediction       int     `json:"prediction"`
	Churn            string  `json:"churn"`
	ChurnProbability float64 `json:"churn_probability"`
	RiskLevel        string  `json:"risk_level"`
}

// PredictionResult is a response together with the styling derived from it
type PredictionResult struct {
	Prediction         int     `json:"prediction"`
	Churn              string  `json:"churn"`
	ChurnProbability   float64 `json:"churn_probability"`
	RiskLevel          string  `json:"risk_level"`
	ProbabilityDisplay string  `json:"probability_display"`
	HeadlineColor      string  `json:"headline_color"`
	Bar                Risk    `json:"bar"`
	Badge              Risk    `json:"badge"`
}

// NewPredictionResult derives the result view of resp.
// The progress bar uses the 70/40 split; the badge follows the server's risk label.
func NewPredictionResult(resp *PredictionResponse) *PredictionResult {
	headline := ColorSafe
	if resp.Prediction == 1 {
		headline = ColorAlert
	}

	return &PredictionResult{
		Prediction:         resp.Prediction,
		Churn:              resp.Churn,
		ChurnProbability:   resp.ChurnProbability,
		RiskLevel:          resp.RiskLevel,
		ProbabilityDisplay: FormatPercent(resp.ChurnProbability),
		HeadlineColor:      headline,
		Bar:                Classify(resp.ChurnProbability, ResultThresholds),
		Badge:              NewRisk(BandFromLabel(resp.RiskLevel)),
	}
}

// FormatPercent renders v with the shortest exact decimal and a percent sign (82 -> "82%")
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
