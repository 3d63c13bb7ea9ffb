package contracts

// Status is the canonical ordinal encoding of a month's payment behaviour,
// independent of which source (ledger, bureau report, market index) it came
// from. Negative values are non-delinquent states; positive values are
// consecutive-default streak lengths.
type Status int

const (
	// StatusNoData marks a calendar month with no payment record.
	StatusNoData Status = -2
	// StatusOnTime marks a month paid on time or closed without default.
	// A single month of lateness is also folded into this value.
	StatusOnTime Status = -1
)

// MaxStreak caps the consecutive-default streak code. Streaks longer than
// this are reported as MaxStreak regardless of their true length.
const MaxStreak = 6

// Defaulted reports whether the status represents a delinquent month.
func (s Status) Defaulted() bool {
	return s > 0
}
