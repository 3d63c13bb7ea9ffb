package features

import (
	"fmt"
	"math"
	"regexp"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
)

// UtilizationColumn is the name of the non-derived column carrying the
// credit-utilization ratio.
const UtilizationColumn = "CREDIT_UTILISATION_RATIO"

var columnNameRe = regexp.MustCompile(`[^A-Za-z0-9_]`)

// Extractor turns a canonical timeline plus utilization ratio into the
// ordered feature vector the scoring model consumes.
type Extractor struct {
	whitelist []string
}

// NewExtractor creates a feature extractor projecting onto the given
// whitelist. The whitelist is read-only for the extractor's lifetime.
func NewExtractor(whitelist []string) *Extractor {
	return &Extractor{whitelist: whitelist}
}

// Vector computes the descriptor catalog over the timeline, imputes
// non-finite results to zero, projects onto the whitelist and prepends the
// utilization column. Column names are sanitized to [A-Za-z0-9_] for model
// compatibility.
func (e *Extractor) Vector(tl contracts.Timeline, utilization float64) (contracts.FeatureVector, error) {
	series := make([]float64, len(tl))
	for i, s := range tl {
		series[i] = float64(s)
	}

	catalog := Catalog(series)

	vec := make(contracts.FeatureVector, 0, len(e.whitelist)+1)
	vec = append(vec, contracts.Feature{Name: SanitizeName(UtilizationColumn), Value: utilization})

	for _, name := range e.whitelist {
		v, ok := catalog[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q not produced by extraction", contracts.ErrFeatureWhitelistMismatch, name)
		}
		vec = append(vec, contracts.Feature{Name: SanitizeName(name), Value: impute(v)})
	}
	return vec, nil
}

// SanitizeName replaces every character outside [A-Za-z0-9_] with an
// underscore.
func SanitizeName(name string) string {
	return columnNameRe.ReplaceAllString(name, "_")
}

// impute replaces non-finite values with a neutral zero.
func impute(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
