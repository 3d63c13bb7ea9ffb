package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
	"github.com/dayumstir/IS4103-Capstone/internal/status"
	"github.com/dayumstir/IS4103-Capstone/pkg/logger"
)

// Anchor phrases of the consumer-credit-index delinquency table.
const (
	indexSectionStart = "Unsecured Credit Card by Age Groups"
	indexSectionWord  = "Delinquency"
)

// Table geometry: 6 trailing rows of one month label plus 7 per-age-group
// delinquency percentages, followed by one trailing header-sized block.
const (
	indexTableRows = 6
	indexTableCols = 8
)

// DefaultAverageUtilization is the market-wide average credit-utilization
// ratio applied when no personal balance data exists.
const DefaultAverageUtilization = 2.3217

// MarketIndexExtractor synthesizes a plausible per-customer delinquency
// sequence from aggregate market delinquency rates. The synthesis draws from
// an injected uniform source, so two invocations with the same document
// generally disagree; reproducibility requires a seeded source.
type MarketIndexExtractor struct {
	rng         contracts.UniformSource
	utilization float64
	logger      *logger.Logger
}

// NewMarketIndexExtractor creates a market-index extractor. utilization is
// the configured market average; pass DefaultAverageUtilization unless the
// asset manifest overrides it.
func NewMarketIndexExtractor(rng contracts.UniformSource, utilization float64, log *logger.Logger) *MarketIndexExtractor {
	return &MarketIndexExtractor{
		rng:         rng,
		utilization: utilization,
		logger:      log,
	}
}

// Extract locates the delinquency table, averages each month's rates and
// draws one default flag per month, then resolves streak codes. Single-month
// streaks are reclassified to on-time to stay consistent with bureau-report
// sequences.
func (e *MarketIndexExtractor) Extract(doc contracts.PageTextSource) (*Extraction, error) {
	pages, err := doc.Pages()
	if err != nil {
		return nil, err
	}

	for _, text := range pages {
		if !strings.Contains(text, indexSectionStart) || !strings.Contains(text, indexSectionWord) {
			continue
		}

		averages, err := monthlyAverages(text)
		if err != nil {
			return nil, err
		}

		defaults := make([]bool, len(averages))
		for i, avg := range averages {
			defaults[i] = e.rng.Float64() < avg/100
		}

		codes := status.ResolveStreaks(defaults)
		status.ReclassifySingles(codes)

		e.logger.WithFields(map[string]interface{}{
			"averages": averages,
			"codes":    codes,
		}).Debug("Synthesized delinquency sequence from market index")

		return &Extraction{Sequence: codes, Utilization: e.utilization}, nil
	}

	return nil, fmt.Errorf("%w: %q", contracts.ErrSectionNotFound, indexSectionStart)
}

// monthlyAverages parses the trailing 6x8 table and averages each row's 7
// percentage cells into one scalar per month, oldest first.
func monthlyAverages(text string) ([]float64, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	tableLen := indexTableCols * (indexTableRows + 1)
	if len(lines) < tableLen {
		return nil, fmt.Errorf("%w: delinquency table truncated (%d lines)", contracts.ErrSectionNotFound, len(lines))
	}
	rows := lines[len(lines)-tableLen : len(lines)-indexTableCols]

	averages := make([]float64, 0, indexTableRows)
	for i := 0; i < len(rows); i += indexTableCols {
		sum := 0.0
		for _, cell := range rows[i+1 : i+indexTableCols] {
			rate, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(cell), "%"), 64)
			if err != nil {
				return nil, fmt.Errorf("parse delinquency rate %q: %w", cell, err)
			}
			sum += rate
		}
		averages = append(averages, sum/float64(indexTableCols-1))
	}
	return averages, nil
}
