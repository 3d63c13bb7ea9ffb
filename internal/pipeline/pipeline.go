// Package pipeline wires the extractors, timeline assembly, feature
// derivation and scoring into the two request flows the service exposes.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
	"github.com/dayumstir/IS4103-Capstone/internal/features"
	"github.com/dayumstir/IS4103-Capstone/internal/report"
	"github.com/dayumstir/IS4103-Capstone/internal/scoring"
	"github.com/dayumstir/IS4103-Capstone/internal/timeline"
	"github.com/dayumstir/IS4103-Capstone/pkg/logger"
)

// Result is a derived credit score plus the feature vector behind it, kept
// for observability.
type Result struct {
	Score  int                     `json:"credit_rating"`
	Vector contracts.FeatureVector `json:"-"`
}

// Pipeline is stateless across requests; all fields are read-only after
// construction, so concurrent requests need no coordination.
type Pipeline struct {
	store     contracts.LedgerStore
	ledger    *timeline.LedgerBuilder
	reports   *report.Extractor
	market    *report.MarketIndexExtractor
	marketDoc contracts.PageTextSource
	features  *features.Extractor
	scorer    *scoring.Client
	logger    *logger.Logger

	now func() time.Time
}

// New creates the scoring pipeline. marketDoc is the configured consumer
// credit index, used when a first rating is requested without a personal
// report.
func New(
	store contracts.LedgerStore,
	ledgerBuilder *timeline.LedgerBuilder,
	reportExtractor *report.Extractor,
	marketExtractor *report.MarketIndexExtractor,
	marketDoc contracts.PageTextSource,
	featureExtractor *features.Extractor,
	scorer *scoring.Client,
	log *logger.Logger,
) *Pipeline {
	return &Pipeline{
		store:     store,
		ledger:    ledgerBuilder,
		reports:   reportExtractor,
		market:    marketExtractor,
		marketDoc: marketDoc,
		features:  featureExtractor,
		scorer:    scorer,
		logger:    log,
		now:       time.Now,
	}
}

// WithClock overrides the pipeline clock. Tests only.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// UpdateCreditRating derives a fresh credit score for an existing customer
// from the instalment ledger, clips it to the customer's tier maximum and
// persists it.
func (p *Pipeline) UpdateCreditRating(ctx context.Context, customerID string) (*Result, error) {
	tl, err := p.ledger.Build(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("build ledger timeline: %w", err)
	}

	utilization, err := p.ledgerUtilization(ctx, customerID)
	if err != nil {
		return nil, err
	}

	result, err := p.score(tl, utilization)
	if err != nil {
		return nil, err
	}

	// The customer's assigned tier, resolved from their current score, caps
	// the new one.
	current, err := p.store.GetCreditScore(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get current credit score: %w", err)
	}
	tier, err := p.store.ResolveTier(ctx, current)
	if err != nil {
		return nil, err
	}
	result.Score = scoring.CapToTier(result.Score, tier)

	if err := p.store.SetCreditScore(ctx, customerID, result.Score); err != nil {
		return nil, fmt.Errorf("persist credit score: %w", err)
	}

	p.logger.WithFields(map[string]interface{}{
		"customer_id":  customerID,
		"credit_score": result.Score,
		"months":       len(tl),
	}).Info("Updated credit rating")

	return result, nil
}

// FirstCreditRating derives an initial score for a prospective customer. A
// personal bureau report drives the derivation when supplied (the last
// parsed document wins, no merge); otherwise a sequence is synthesized from
// the configured market delinquency index. Nothing is persisted.
func (p *Pipeline) FirstCreditRating(ctx context.Context, docs []contracts.PageTextSource) (*Result, error) {
	var (
		ext *report.Extraction
		err error
	)

	if len(docs) == 0 {
		ext, err = p.market.Extract(p.marketDoc)
		if err != nil {
			return nil, fmt.Errorf("extract market index: %w", err)
		}
	} else {
		for _, doc := range docs {
			ext, err = p.reports.Extract(doc)
			if err != nil {
				return nil, fmt.Errorf("extract bureau report: %w", err)
			}
		}
	}

	tl, err := timeline.FromSequence(ext.Sequence, contracts.MonthKeyOf(p.now()))
	if err != nil {
		return nil, fmt.Errorf("align extracted sequence: %w", err)
	}

	result, err := p.score(tl, ext.Utilization)
	if err != nil {
		return nil, err
	}

	p.logger.WithFields(map[string]interface{}{
		"credit_score": result.Score,
		"from_report":  len(docs) > 0,
	}).Info("Derived first credit rating")

	return result, nil
}

// ledgerUtilization computes outstanding balance over the tier credit limit.
func (p *Pipeline) ledgerUtilization(ctx context.Context, customerID string) (float64, error) {
	balance, err := p.store.OutstandingBalance(ctx, customerID)
	if err != nil {
		return 0, fmt.Errorf("outstanding balance: %w", err)
	}
	limit, err := p.store.CreditLimit(ctx, customerID)
	if err != nil {
		return 0, err
	}
	if limit == 0 {
		return 0, fmt.Errorf("%w: customer %s", contracts.ErrMissingCreditLimit, customerID)
	}
	return balance / float64(limit), nil
}

func (p *Pipeline) score(tl contracts.Timeline, utilization float64) (*Result, error) {
	vec, err := p.features.Vector(tl, utilization)
	if err != nil {
		return nil, err
	}
	score, err := p.scorer.Score(vec)
	if err != nil {
		return nil, err
	}
	return &Result{Score: score, Vector: vec}, nil
}
