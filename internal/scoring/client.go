package scoring

import (
	"fmt"
	"math"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
)

// MaxScore is the top of the credit-score scale.
const MaxScore = 1000

// Client scores feature vectors against the default-risk model.
type Client struct {
	model contracts.ScoringModel
}

// NewClient creates a scoring client.
func NewClient(model contracts.ScoringModel) *Client {
	return &Client{model: model}
}

// Score predicts the probability of default for the vector and maps it to
// an integer credit score: round((1-p) * 1000), clamped to [0,1000].
func (c *Client) Score(vec contracts.FeatureVector) (int, error) {
	p, err := c.model.Predict(vec.Values())
	if err != nil {
		return 0, fmt.Errorf("predict default likelihood: %w", err)
	}

	score := int(math.Round((1 - p) * MaxScore))
	if score < 0 {
		score = 0
	}
	if score > MaxScore {
		score = MaxScore
	}
	return score, nil
}

// CapToTier clips a score to the tier's maximum. A nil tier leaves the score
// unchanged.
func CapToTier(score int, tier *contracts.CreditTier) int {
	if tier != nil && score > tier.MaxScore {
		return tier.MaxScore
	}
	return score
}
