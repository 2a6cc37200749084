package churn

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/kunal-oza/churn-prediction-service/internal/models"
	"github.com/kunal-oza/churn-prediction-service/internal/store"
)

// classLabels maps the model's class index to the human label.
var classLabels = map[int]string{
	0: "Not Churn",
	1: "Churn",
}

// Predictor is the loaded classification model: a fixed column-order contract
// plus a stateless scoring call, safe for concurrent use.
type Predictor interface {
	FeatureNames() []string
	Predict(row []any) (int, error)
}

// Orchestrator runs the inference-and-persistence pipeline for one validated
// request: stage the profile upsert, run inference, append the prediction, and
// commit both writes as one transaction. If inference fails after the profile
// is staged, the whole session rolls back and no partial state persists.
type Orchestrator struct {
	Store store.Gateway
	Model Predictor
}

// Predict executes the pipeline. Each error it returns is one of the package's
// typed faults; by the time it returns, the session is either committed or
// fully rolled back.
func (o *Orchestrator) Predict(ctx context.Context, req *models.PredictionRequest) (*models.PredictionResponse, error) {
	profile := req.Profile()

	sess, err := o.Store.Begin(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "begin", Cause: err}
	}
	// No-op after a successful commit; otherwise discards staged writes. The
	// update case rolls back the same as the insert case: observable state
	// must not depend on whether the customer existed before.
	defer sess.Rollback(ctx)

	existing, err := sess.FindProfile(ctx, profile.CustomerID)
	if err != nil {
		return nil, &PersistenceError{Op: "find profile", Cause: err}
	}
	if existing == nil {
		log.Printf("predict: new customer %d", profile.CustomerID)
	}

	if err := sess.UpsertProfile(ctx, profile); err != nil {
		return nil, &PersistenceError{Op: "upsert profile", Cause: err}
	}

	row, err := projectRow(o.Model.FeatureNames(), req.Features())
	if err != nil {
		return nil, &InferenceError{Cause: err}
	}

	idx, err := o.Model.Predict(row)
	if err != nil {
		return nil, &InferenceError{Cause: err}
	}

	label, ok := classLabels[idx]
	if !ok {
		return nil, &InferenceError{Cause: fmt.Errorf("%w: %d", ErrUnknownClassIndex, idx)}
	}

	rec := &models.PredictionRecord{
		ID:         uuid.New().String(),
		CustomerID: profile.CustomerID,
		Label:      label,
	}
	if err := sess.AppendPrediction(ctx, rec); err != nil {
		return nil, &PersistenceError{Op: "append prediction", Cause: err}
	}

	if err := sess.Commit(ctx); err != nil {
		return nil, &PersistenceError{Op: "commit", Cause: err}
	}

	return &models.PredictionResponse{CustomerID: profile.CustomerID, Label: label}, nil
}

// projectRow reorders the validated feature set into the model's required
// column order. A column the model requires but the feature set lacks is a
// contract violation, not a recoverable condition.
func projectRow(columns []string, features map[string]any) ([]any, error) {
	row := make([]any, len(columns))
	for i, col := range columns {
		v, ok := features[col]
		if !ok {
			return nil, fmt.Errorf("%w: model requires column %q", ErrInferenceInputMismatch, col)
		}
		row[i] = v
	}
	return row, nil
}
