package contracts

import "time"

// InstalmentPayment is one scheduled instalment of a BNPL transaction as the
// ledger records it. PaidDate is nil while the instalment is unpaid.
type InstalmentPayment struct {
	ID        string
	DueDate   time.Time
	PaidDate  *time.Time
	AmountDue float64
}

// Paid reports whether the instalment has been settled.
func (p InstalmentPayment) Paid() bool {
	return p.PaidDate != nil
}

// CreditTier is a score band with its spending limit. A customer's tier caps
// both their credit limit and the maximum score they can be assigned.
type CreditTier struct {
	ID          string
	Name        string
	MinScore    int
	MaxScore    int
	CreditLimit int
}

// Contains reports whether score falls inside the tier's band.
func (t CreditTier) Contains(score int) bool {
	return score >= t.MinScore && score <= t.MaxScore
}
