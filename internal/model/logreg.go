package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// defaultParams ships a trained parameter set so the service predicts
// out-of-the-box; MODEL_PATH can point at a retrained file.
//
//go:embed model.json
var defaultParams []byte

// params is the on-disk shape of a trained model: an intercept plus one entry
// per input column, in the exact order the model was fitted on.
type params struct {
	Intercept float64   `json:"intercept"`
	Features  []feature `json:"features"`
}

type feature struct {
	Name string `json:"name"`
	Type string `json:"type"` // "numeric" or "categorical"

	// numeric: contribution is Weight * (x - Mean) / Scale.
	Weight float64 `json:"weight,omitempty"`
	Mean   float64 `json:"mean,omitempty"`
	Scale  float64 `json:"scale,omitempty"`

	// categorical: contribution is Weights[level]; every valid level must
	// have an entry.
	Weights map[string]float64 `json:"weights,omitempty"`
}

// LogisticModel is a binary churn classifier. It is loaded once at process
// start and is immutable afterward, so concurrent Predict calls are safe.
type LogisticModel struct {
	intercept float64
	features  []feature
	names     []string
}

// Load reads model parameters from path, or from the embedded default when
// path is empty. It fails fast on a malformed parameter file so a bad model
// never reaches serving traffic.
func Load(path string) (*LogisticModel, error) {
	raw := defaultParams
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read model file: %w", err)
		}
		raw = b
	}

	var p params
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse model parameters: %w", err)
	}
	if len(p.Features) == 0 {
		return nil, fmt.Errorf("model parameters declare no features")
	}

	names := make([]string, len(p.Features))
	seen := make(map[string]bool, len(p.Features))
	for i, f := range p.Features {
		if f.Name == "" {
			return nil, fmt.Errorf("model feature %d has no name", i)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("model feature %q declared twice", f.Name)
		}
		seen[f.Name] = true

		switch f.Type {
		case "numeric":
			// Scale 0 would divide by zero; treat it as unscaled.
			if f.Scale == 0 {
				p.Features[i].Scale = 1
			}
		case "categorical":
			if len(f.Weights) == 0 {
				return nil, fmt.Errorf("categorical feature %q has no level weights", f.Name)
			}
		default:
			return nil, fmt.Errorf("feature %q has unknown type %q", f.Name, f.Type)
		}
		names[i] = f.Name
	}

	return &LogisticModel{intercept: p.Intercept, features: p.Features, names: names}, nil
}

// FeatureNames returns the model's required input columns in fit order. The
// caller must project its feature set into exactly this order before Predict.
func (m *LogisticModel) FeatureNames() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Predict scores one row (aligned with FeatureNames) and returns the class
// index: 0 = no churn, 1 = churn. It errors on a value the model was not
// fitted on rather than guessing.
func (m *LogisticModel) Predict(row []any) (int, error) {
	if len(row) != len(m.features) {
		return 0, fmt.Errorf("model expects %d columns, got %d", len(m.features), len(row))
	}

	z := m.intercept
	for i, f := range m.features {
		switch f.Type {
		case "numeric":
			x, err := toFloat(row[i])
			if err != nil {
				return 0, fmt.Errorf("column %q: %w", f.Name, err)
			}
			z += f.Weight * (x - f.Mean) / f.Scale
		case "categorical":
			s, ok := row[i].(string)
			if !ok {
				return 0, fmt.Errorf("column %q: expected string level, got %T", f.Name, row[i])
			}
			w, ok := f.Weights[s]
			if !ok {
				return 0, fmt.Errorf("column %q: unknown level %q", f.Name, s)
			}
			z += w
		}
	}

	if sigmoid(z) >= 0.5 {
		return 1, nil
	}
	return 0, nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("expected numeric value, got %T", v)
	}
}
