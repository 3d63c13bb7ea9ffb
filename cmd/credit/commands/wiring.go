package commands

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dayumstir/IS4103-Capstone/internal/assets"
	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
	"github.com/dayumstir/IS4103-Capstone/internal/features"
	"github.com/dayumstir/IS4103-Capstone/internal/pipeline"
	"github.com/dayumstir/IS4103-Capstone/internal/report"
	"github.com/dayumstir/IS4103-Capstone/internal/scoring"
	"github.com/dayumstir/IS4103-Capstone/internal/timeline"
	"github.com/dayumstir/IS4103-Capstone/pkg/config"
	"github.com/dayumstir/IS4103-Capstone/pkg/logger"
)

// buildPipeline loads the scoring assets named in the manifest and wires
// them into a scoring pipeline. store may be nil for commands that only
// use the report path and never touch the ledger.
func buildPipeline(cfg *config.Config, log *logger.Logger, store contracts.LedgerStore) (*pipeline.Pipeline, error) {
	// 1. Load the assets manifest
	man, err := assets.Load(cfg.Assets.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("load assets manifest: %w", err)
	}

	// 2. Load the feature whitelist
	whitelist, err := features.LoadWhitelist(man.Whitelist.Path)
	if err != nil {
		return nil, fmt.Errorf("load feature whitelist: %w", err)
	}

	// 3. Load the default-risk model
	model, err := scoring.LoadLightGBM(man.Model.Path)
	if err != nil {
		return nil, fmt.Errorf("load scoring model: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"model":     man.Model.Path,
		"whitelist": len(whitelist),
	}).Info("Scoring assets loaded")

	// 4. Create extractors
	reportExtractor := report.NewExtractor(log)

	avgUtilization := man.MarketIndex.AverageUtilisation
	if avgUtilization == 0 {
		avgUtilization = report.DefaultAverageUtilization
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	marketExtractor := report.NewMarketIndexExtractor(rng, avgUtilization, log)
	marketDoc := report.PDFFromFile(man.MarketIndex.Path)

	featureExtractor := features.NewExtractor(whitelist)

	// 5. Create scoring client
	scorer := scoring.NewClient(model)

	// 6. Create ledger timeline builder
	ledgerBuilder := timeline.NewLedgerBuilder(store, log)

	// 7. Assemble the pipeline
	return pipeline.New(
		store,
		ledgerBuilder,
		reportExtractor,
		marketExtractor,
		marketDoc,
		featureExtractor,
		scorer,
		log,
	), nil
}
