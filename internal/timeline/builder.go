package timeline

import (
	"context"
	"fmt"
	"time"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
	"github.com/dayumstir/IS4103-Capstone/pkg/logger"
)

// LookbackMonths is the ledger window: instalments due within the most
// recent 6 calendar months feed the timeline.
const LookbackMonths = 6

// LedgerBuilder derives a customer's delinquency timeline from the
// instalment-payment ledger.
type LedgerBuilder struct {
	store  contracts.LedgerStore
	logger *logger.Logger

	// now is injectable so tests can pin the current month.
	now func() time.Time
}

// NewLedgerBuilder creates a ledger timeline builder.
func NewLedgerBuilder(store contracts.LedgerStore, log *logger.Logger) *LedgerBuilder {
	return &LedgerBuilder{
		store:  store,
		logger: log,
		now:    time.Now,
	}
}

// WithClock overrides the builder's clock. Tests only.
func (b *LedgerBuilder) WithClock(now func() time.Time) *LedgerBuilder {
	b.now = now
	return b
}

// Build fetches the customer's recent instalments and produces a dense
// timeline anchored at the earliest due date found. A customer with no
// instalments in the window yields a single StatusNoData month.
func (b *LedgerBuilder) Build(ctx context.Context, customerID string) (contracts.Timeline, error) {
	now := b.now()
	since := now.AddDate(0, -LookbackMonths, 0)

	payments, err := b.store.FetchPayments(ctx, customerID, since)
	if err != nil {
		return nil, fmt.Errorf("fetch instalment payments: %w", err)
	}

	byMonth := make(map[contracts.MonthKey]contracts.Status)
	earliest := now
	for _, p := range payments {
		if p.DueDate.Before(earliest) {
			earliest = p.DueDate
		}

		class := latenessClass(p, now)
		key := contracts.MonthKeyOf(p.DueDate)

		// Several instalments can fall due in the same month; the worst
		// observed class wins.
		if cur, ok := byMonth[key]; !ok || class > cur {
			byMonth[key] = class
		}
	}

	b.logger.WithFields(map[string]interface{}{
		"customer_id": customerID,
		"instalments": len(payments),
		"months":      len(byMonth),
	}).Debug("Built monthly lateness map")

	return Assemble(byMonth, contracts.MonthKeyOf(earliest), contracts.MonthKeyOf(now))
}

// latenessClass computes the canonical status of a single instalment.
func latenessClass(p contracts.InstalmentPayment, now time.Time) contracts.Status {
	due := contracts.MonthKeyOf(p.DueDate)

	if p.Paid() {
		monthsLate := due.MonthsUntil(contracts.MonthKeyOf(*p.PaidDate))
		if monthsLate <= 0 {
			return contracts.StatusOnTime
		}
		if monthsLate > 9 {
			monthsLate = 9
		}
		if monthsLate == 1 {
			// One month late is deemed paid on time.
			return contracts.StatusOnTime
		}
		return contracts.Status(monthsLate)
	}

	monthsLate := due.MonthsUntil(contracts.MonthKeyOf(now))
	if monthsLate > contracts.MaxStreak {
		monthsLate = contracts.MaxStreak
	}
	if monthsLate <= 0 {
		// Due this month, not yet late.
		return contracts.StatusOnTime
	}
	return contracts.Status(monthsLate)
}
