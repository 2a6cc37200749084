package models

import "time"

// PredictionRequest is the POST /predict payload.
//
// This struct is the single source of truth for the input schema: the validate
// tags carry every enumeration and bound, and Profile() maps the same fields
// onto the persisted CustomerProfile, so the two cannot drift apart.
//
// Numeric fields that are valid at zero (SeniorCitizen, tenure, the charges)
// are pointers so that "required" means the key was present, not non-zero.
type PredictionRequest struct {
	CustomerID       *int     `json:"CustomerID" validate:"required"`
	Gender           string   `json:"gender" validate:"required,oneof=Male Female"`
	SeniorCitizen    *int     `json:"SeniorCitizen" validate:"required,oneof=0 1"`
	Partner          string   `json:"Partner" validate:"required,oneof=Yes No"`
	Dependents       string   `json:"Dependents" validate:"required,oneof=Yes No"`
	Tenure           *int     `json:"tenure" validate:"required,gte=0,lte=72"`
	PhoneService     string   `json:"PhoneService" validate:"required,oneof=Yes No"`
	MultipleLines    string   `json:"MultipleLines" validate:"required,oneof=Yes No 'No phone service'"`
	InternetService  string   `json:"InternetService" validate:"required,oneof=DSL 'Fiber optic' No"`
	OnlineSecurity   string   `json:"OnlineSecurity" validate:"required,oneof=Yes No 'No internet service'"`
	OnlineBackup     string   `json:"OnlineBackup" validate:"required,oneof=Yes No 'No internet service'"`
	DeviceProtection string   `json:"DeviceProtection" validate:"required,oneof=Yes No 'No internet service'"`
	TechSupport      string   `json:"TechSupport" validate:"required,oneof=Yes No 'No internet service'"`
	StreamingTV      string   `json:"StreamingTV" validate:"required,oneof=Yes No 'No internet service'"`
	StreamingMovies  string   `json:"StreamingMovies" validate:"required,oneof=Yes No 'No internet service'"`
	Contract         string   `json:"Contract" validate:"required,oneof=Month-to-month 'One year' 'Two year'"`
	PaperlessBilling string   `json:"PaperlessBilling" validate:"required,oneof=Yes No"`
	PaymentMethod    string   `json:"PaymentMethod" validate:"required,oneof='Electronic check' 'Mailed check' 'Bank transfer (automatic)' 'Credit card (automatic)'"`
	MonthlyCharges   *float64 `json:"MonthlyCharges" validate:"required,gte=0"`
	TotalCharges     *float64 `json:"total_charges" validate:"required,gte=0"`
}

// Profile builds the persisted profile from a validated request. Every mutable
// attribute is assigned, so an upsert is always a full replace, never a merge.
// Must only be called after validation (the pointer fields are dereferenced).
func (r *PredictionRequest) Profile() *CustomerProfile {
	return &CustomerProfile{
		CustomerID:       *r.CustomerID,
		Gender:           r.Gender,
		SeniorCitizen:    *r.SeniorCitizen,
		Partner:          r.Partner,
		Dependents:       r.Dependents,
		Tenure:           *r.Tenure,
		PhoneService:     r.PhoneService,
		MultipleLines:    r.MultipleLines,
		InternetService:  r.InternetService,
		OnlineSecurity:   r.OnlineSecurity,
		OnlineBackup:     r.OnlineBackup,
		DeviceProtection: r.DeviceProtection,
		TechSupport:      r.TechSupport,
		StreamingTV:      r.StreamingTV,
		StreamingMovies:  r.StreamingMovies,
		Contract:         r.Contract,
		PaperlessBilling: r.PaperlessBilling,
		PaymentMethod:    r.PaymentMethod,
		MonthlyCharges:   *r.MonthlyCharges,
		TotalCharges:     *r.TotalCharges,
	}
}

// Features returns the model input columns keyed by the names the trained
// model was fitted on (the request field names minus CustomerID). Must only
// be called after validation.
func (r *PredictionRequest) Features() map[string]any {
	return map[string]any{
		"gender":           r.Gender,
		"SeniorCitizen":    *r.SeniorCitizen,
		"Partner":          r.Partner,
		"Dependents":       r.Dependents,
		"tenure":           *r.Tenure,
		"PhoneService":     r.PhoneService,
		"MultipleLines":    r.MultipleLines,
		"InternetService":  r.InternetService,
		"OnlineSecurity":   r.OnlineSecurity,
		"OnlineBackup":     r.OnlineBackup,
		"DeviceProtection": r.DeviceProtection,
		"TechSupport":      r.TechSupport,
		"StreamingTV":      r.StreamingTV,
		"StreamingMovies":  r.StreamingMovies,
		"Contract":         r.Contract,
		"PaperlessBilling": r.PaperlessBilling,
		"PaymentMethod":    r.PaymentMethod,
		"MonthlyCharges":   *r.MonthlyCharges,
		"total_charges":    *r.TotalCharges,
	}
}

// CustomerProfile is the mutable per-customer row. It always reflects the most
// recently submitted request for that customer (last-write-wins).
type CustomerProfile struct {
	CustomerID       int       `json:"CustomerID"`
	Gender           string    `json:"gender"`
	SeniorCitizen    int       `json:"SeniorCitizen"`
	Partner          string    `json:"Partner"`
	Dependents       string    `json:"Dependents"`
	Tenure           int       `json:"tenure"`
	PhoneService     string    `json:"PhoneService"`
	MultipleLines    string    `json:"MultipleLines"`
	InternetService  string    `json:"InternetService"`
	OnlineSecurity   string    `json:"OnlineSecurity"`
	OnlineBackup     string    `json:"OnlineBackup"`
	DeviceProtection string    `json:"DeviceProtection"`
	TechSupport      string    `json:"TechSupport"`
	StreamingTV      string    `json:"StreamingTV"`
	StreamingMovies  string    `json:"StreamingMovies"`
	Contract         string    `json:"Contract"`
	PaperlessBilling string    `json:"PaperlessBilling"`
	PaymentMethod    string    `json:"PaymentMethod"`
	MonthlyCharges   float64   `json:"MonthlyCharges"`
	TotalCharges     float64   `json:"total_charges"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PredictionRecord is one row of the append-only prediction log. Records are
// never updated or deleted; a customer's history is the ordered sequence of
// records sharing its customer_id.
type PredictionRecord struct {
	ID         string    `json:"id"`
	CustomerID int       `json:"customer_id"`
	Label      string    `json:"label"`
	CreatedAt  time.Time `json:"created_at"`
}

// PredictionResponse is returned by POST /predict.
type PredictionResponse struct {
	CustomerID int    `json:"CustomerID"`
	Label      string `json:"Label"`
}
