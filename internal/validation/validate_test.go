package validation

import (
	"testing"

	"github.com/kunal-oza/churn-prediction-service/internal/models"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// validRequest returns a request that passes every constraint.
func validRequest() *models.PredictionRequest {
	return &models.PredictionRequest{
		CustomerID:       intPtr(1001),
		Gender:           "Male",
		SeniorCitizen:    intPtr(0),
		Partner:          "Yes",
		Dependents:       "No",
		Tenure:           intPtr(12),
		PhoneService:     "Yes",
		MultipleLines:    "No",
		InternetService:  "DSL",
		OnlineSecurity:   "Yes",
		OnlineBackup:     "No",
		DeviceProtection: "No",
		TechSupport:      "Yes",
		StreamingTV:      "No",
		StreamingMovies:  "No",
		Contract:         "Month-to-month",
		PaperlessBilling: "Yes",
		PaymentMethod:    "Electronic check",
		MonthlyCharges:   floatPtr(70.5),
		TotalCharges:     floatPtr(1000.0),
	}
}

func fields(errs []FieldError) map[string]string {
	m := make(map[string]string, len(errs))
	for _, e := range errs {
		m[e.Field] = e.Message
	}
	return m
}

func TestValidRequestPasses(t *testing.T) {
	if errs := Validate(validRequest()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestZeroValuesAreValid(t *testing.T) {
	req := validRequest()
	req.SeniorCitizen = intPtr(0)
	req.Tenure = intPtr(0)
	req.MonthlyCharges = floatPtr(0)
	req.TotalCharges = floatPtr(0)

	if errs := Validate(req); len(errs) != 0 {
		t.Fatalf("zero-valued fields must be valid, got %v", errs)
	}
}

func TestNoInternetServiceIsPreserved(t *testing.T) {
	req := validRequest()
	req.InternetService = "No"
	req.OnlineSecurity = "No internet service"
	req.OnlineBackup = "No internet service"
	req.DeviceProtection = "No internet service"
	req.TechSupport = "No internet service"
	req.StreamingTV = "No internet service"
	req.StreamingMovies = "No internet service"

	if errs := Validate(req); len(errs) != 0 {
		t.Fatalf("'No internet service' is a valid level, got %v", errs)
	}
}

func TestTenureOutOfRange(t *testing.T) {
	req := validRequest()
	req.Tenure = intPtr(100)

	errs := Validate(req)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs[0].Field != "tenure" {
		t.Fatalf("expected tenure error, got field %q", errs[0].Field)
	}
}

func TestMissingRequiredField(t *testing.T) {
	req := validRequest()
	req.CustomerID = nil

	m := fields(Validate(req))
	if m["CustomerID"] != "field is required" {
		t.Fatalf("expected required error for CustomerID, got %v", m)
	}
}

func TestAllViolationsAreEnumerated(t *testing.T) {
	req := validRequest()
	req.Gender = "Alien"
	req.SeniorCitizen = intPtr(2)
	req.Tenure = intPtr(-3)
	req.Contract = "Forever"
	req.MonthlyCharges = floatPtr(-5)

	m := fields(Validate(req))
	for _, want := range []string{"gender", "SeniorCitizen", "tenure", "Contract", "MonthlyCharges"} {
		if _, ok := m[want]; !ok {
			t.Errorf("violation for %q not reported: %v", want, m)
		}
	}
	if len(m) != 5 {
		t.Fatalf("expected 5 violations, got %d: %v", len(m), m)
	}
}

func TestEnumMessageListsQuotedLevels(t *testing.T) {
	req := validRequest()
	req.OnlineSecurity = "Maybe"

	m := fields(Validate(req))
	want := "must be one of: Yes, No, No internet service"
	if m["OnlineSecurity"] != want {
		t.Fatalf("got %q, want %q", m["OnlineSecurity"], want)
	}
}

func TestPaymentMethodEnum(t *testing.T) {
	req := validRequest()

	for _, ok := range []string{"Electronic check", "Mailed check", "Bank transfer (automatic)", "Credit card (automatic)"} {
		req.PaymentMethod = ok
		if errs := Validate(req); len(errs) != 0 {
			t.Errorf("%q should be valid: %v", ok, errs)
		}
	}

	req.PaymentMethod = "Cash"
	if errs := Validate(req); len(errs) != 1 || errs[0].Field != "PaymentMethod" {
		t.Fatalf("expected PaymentMethod violation, got %v", errs)
	}
}
