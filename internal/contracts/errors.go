package contracts

import "errors"

// Sentinel errors surfaced by the derivation pipeline. Callers inspect them
// with errors.Is; every failure aborts the whole request, no partial feature
// vector is ever returned.
var (
	// ErrSectionNotFound means an expected anchor phrase was absent from the
	// supplied document.
	ErrSectionNotFound = errors.New("document section not found")

	// ErrBalanceNotFound means the status section held no numeric balance.
	ErrBalanceNotFound = errors.New("no outstanding balance found in document")

	// ErrUnknownStatusCode means a status symbol fell outside the bureau
	// code alphabet.
	ErrUnknownStatusCode = errors.New("unknown payment status code")

	// ErrNoCreditTierMatch means no configured tier covers the score.
	ErrNoCreditTierMatch = errors.New("no credit tier matches score")

	// ErrAmbiguousCreditTierMatch means more than one tier covers the score.
	ErrAmbiguousCreditTierMatch = errors.New("multiple credit tiers match score")

	// ErrMissingCreditLimit means the credit limit resolved to zero or could
	// not be resolved, leaving the utilization ratio undefined.
	ErrMissingCreditLimit = errors.New("credit limit missing or zero")

	// ErrFeatureWhitelistMismatch means a whitelisted feature name was not
	// produced by the extraction step.
	ErrFeatureWhitelistMismatch = errors.New("feature whitelist mismatch")
)
