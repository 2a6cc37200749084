package churn

import (
	"errors"
	"fmt"
)

// ErrInferenceInputMismatch means the validated feature set could not be
// projected into the model's required column order.
var ErrInferenceInputMismatch = errors.New("inference input does not match model columns")

// ErrUnknownClassIndex means the model returned a class outside {0, 1}. The
// model contract promises only those two values, so this is defensive.
var ErrUnknownClassIndex = errors.New("model returned unknown class index")

// InferenceError is a per-request server fault: the model could not produce a
// usable class. The staged profile upsert has been rolled back.
type InferenceError struct {
	Cause error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed: %v", e.Cause)
}

func (e *InferenceError) Unwrap() error { return e.Cause }

// PersistenceError is an infrastructure fault from the store. Any staged
// changes have been rolled back.
type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed (%s): %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error { return e.Cause }
