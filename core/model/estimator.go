package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface for trainable models.
type Fitter interface {
	// Fit trains the model on X with labels y.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that can predict.
type Predictor interface {
	// Predict returns predictions for the input data.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns an evaluation score of the prediction on X against y.
	Score(X, y mat.Matrix) (float64, error)
}

// Classifier combines the interfaces a classification model must satisfy
// to participate in cross-validated scoring.
type Classifier interface {
	Fitter
	Predictor
	Scorer
}
