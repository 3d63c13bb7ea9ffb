// Package scoring invokes the pretrained default-risk model and maps its
// probability output onto the 0-1000 credit-score scale.
package scoring

import (
	"fmt"

	"github.com/dmitryikh/leaves"
)

// LightGBM wraps a LightGBM ensemble loaded from a model file. The ensemble
// is read-only after load and safe for concurrent prediction.
type LightGBM struct {
	ensemble *leaves.Ensemble
}

// LoadLightGBM loads the model file at path. The sigmoid output
// transformation is loaded with it, so Predict yields probabilities, not raw
// margins.
func LoadLightGBM(path string) (*LightGBM, error) {
	ensemble, err := leaves.LGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("load lightgbm model %s: %w", path, err)
	}
	return &LightGBM{ensemble: ensemble}, nil
}

// NFeatures returns the number of input columns the model was trained on.
func (m *LightGBM) NFeatures() int {
	return m.ensemble.NFeatures()
}

// Predict returns the probability of default for one feature row.
func (m *LightGBM) Predict(values []float64) (float64, error) {
	if len(values) != m.ensemble.NFeatures() {
		return 0, fmt.Errorf("model expects %d features, got %d", m.ensemble.NFeatures(), len(values))
	}
	return m.ensemble.PredictSingle(values, 0), nil
}
