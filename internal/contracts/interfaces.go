package contracts

import (
	"context"
	"time"
)

// LedgerStore is the persistence collaborator: instalment payments, customer
// credit scores and credit tiers.
type LedgerStore interface {
	// FetchPayments returns the customer's instalment payments whose due
	// date falls on or after since.
	FetchPayments(ctx context.Context, customerID string, since time.Time) ([]InstalmentPayment, error)

	// OutstandingBalance sums the customer's unpaid instalments that are
	// already due.
	OutstandingBalance(ctx context.Context, customerID string) (float64, error)

	// CreditLimit returns the limit of the customer's assigned tier.
	CreditLimit(ctx context.Context, customerID string) (int, error)

	GetCreditScore(ctx context.Context, customerID string) (int, error)
	SetCreditScore(ctx context.Context, customerID string, score int) error

	// ResolveTier finds the single tier whose band contains score. It fails
	// with ErrNoCreditTierMatch or ErrAmbiguousCreditTierMatch otherwise.
	ResolveTier(ctx context.Context, score int) (*CreditTier, error)

	// ListCustomerIDs returns the ids of all active customers, for the
	// scheduled rescoring job.
	ListCustomerIDs(ctx context.Context) ([]string, error)
}

// ScoringModel is the pretrained default-risk model. Predict takes the
// feature values in trained column order and returns a probability of
// default in [0,1]. Implementations are read-only after load and safe for
// concurrent use.
type ScoringModel interface {
	Predict(values []float64) (float64, error)
}

// PageTextSource yields the plain text of each page of a document. The
// underlying handle is acquired and released within a single Pages call,
// on every exit path.
type PageTextSource interface {
	Pages() ([]string, error)
}

// UniformSource draws uniform random numbers in [0,1). *rand.Rand satisfies
// it; tests inject a deterministic fake.
type UniformSource interface {
	Float64() float64
}
