package jobs

import (
	"context"
	"fmt"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
	"github.com/dayumstir/IS4103-Capstone/internal/pipeline"
	"github.com/dayumstir/IS4103-Capstone/pkg/logger"
)

// Rescorer recomputes and persists a customer's credit rating.
type Rescorer interface {
	UpdateCreditRating(ctx context.Context, customerID string) (*pipeline.Result, error)
}

// RescoreJob recomputes the credit rating of every active customer from
// their instalment ledger. Individual customer failures are logged and
// skipped so one bad ledger does not block the rest of the batch.
type RescoreJob struct {
	store    contracts.LedgerStore
	rescorer Rescorer
	schedule string
	logger   *logger.Logger
}

// NewRescoreJob creates a new rescore job
func NewRescoreJob(store contracts.LedgerStore, rescorer Rescorer, schedule string, log *logger.Logger) *RescoreJob {
	return &RescoreJob{
		store:    store,
		rescorer: rescorer,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name
func (j *RescoreJob) Name() string {
	return "credit_rescore"
}

// Schedule returns the cron schedule
func (j *RescoreJob) Schedule() string {
	return j.schedule
}

// Run rescores all active customers
func (j *RescoreJob) Run(ctx context.Context) error {
	customerIDs, err := j.store.ListCustomerIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}

	j.logger.WithField("customers", len(customerIDs)).Info("Starting credit rescore batch")

	failed := 0
	for _, id := range customerIDs {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := j.rescorer.UpdateCreditRating(ctx, id)
		if err != nil {
			failed++
			j.logger.WithFields(map[string]interface{}{
				"customer_id": id,
				"error":       err.Error(),
			}).Warn("Failed to rescore customer")
			continue
		}

		j.logger.WithFields(map[string]interface{}{
			"customer_id":   id,
			"credit_rating": result.Score,
		}).Debug("Customer rescored")
	}

	j.logger.WithFields(map[string]interface{}{
		"customers": len(customerIDs),
		"failed":    failed,
	}).Info("Credit rescore batch completed")

	if failed > 0 {
		return fmt.Errorf("rescore batch finished with %d of %d customers failed", failed, len(customerIDs))
	}
	return nil
}
