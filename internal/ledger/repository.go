// Package ledger implements contracts.LedgerStore against the BNPL
// PostgreSQL schema.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
)

// Repository is the pgx-backed ledger store.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a ledger repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// FetchPayments returns the customer's instalment payments due on or after
// since, across all of their transactions.
func (r *Repository) FetchPayments(ctx context.Context, customerID string, since time.Time) ([]contracts.InstalmentPayment, error) {
	query := `
		SELECT ip.instalment_payment_id, ip.due_date, ip.paid_date, ip.amount_due
		FROM "InstalmentPayment" ip
		JOIN "Transaction" t ON t.transaction_id = ip.transaction_id
		WHERE t.customer_id = $1 AND ip.due_date >= $2
		ORDER BY ip.due_date ASC
	`

	rows, err := r.pool.Query(ctx, query, customerID, since)
	if err != nil {
		return nil, fmt.Errorf("query instalment payments: %w", err)
	}
	defer rows.Close()

	var payments []contracts.InstalmentPayment
	for rows.Next() {
		var p contracts.InstalmentPayment
		if err := rows.Scan(&p.ID, &p.DueDate, &p.PaidDate, &p.AmountDue); err != nil {
			return nil, fmt.Errorf("scan instalment payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// OutstandingBalance sums the customer's unpaid instalments that are already
// due.
func (r *Repository) OutstandingBalance(ctx context.Context, customerID string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(ip.amount_due), 0)
		FROM "InstalmentPayment" ip
		JOIN "Transaction" t ON t.transaction_id = ip.transaction_id
		WHERE t.customer_id = $1
		  AND ip.status = 'UNPAID'
		  AND ip.due_date <= NOW()
	`

	var balance float64
	if err := r.pool.QueryRow(ctx, query, customerID).Scan(&balance); err != nil {
		return 0, fmt.Errorf("query outstanding balance: %w", err)
	}
	return balance, nil
}

// CreditLimit returns the limit of the customer's assigned credit tier.
func (r *Repository) CreditLimit(ctx context.Context, customerID string) (int, error) {
	query := `
		SELECT ct.credit_limit
		FROM "Customer" c
		JOIN "CreditTier" ct ON ct.credit_tier_id = c.credit_tier_id
		WHERE c.customer_id = $1
	`

	var limit int
	if err := r.pool.QueryRow(ctx, query, customerID).Scan(&limit); err != nil {
		return 0, fmt.Errorf("%w: customer %s: %v", contracts.ErrMissingCreditLimit, customerID, err)
	}
	return limit, nil
}

// GetCreditScore returns the customer's current credit score.
func (r *Repository) GetCreditScore(ctx context.Context, customerID string) (int, error) {
	var score int
	err := r.pool.QueryRow(ctx,
		`SELECT credit_score FROM "Customer" WHERE customer_id = $1`, customerID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("query credit score: %w", err)
	}
	return score, nil
}

// SetCreditScore persists a newly derived credit score.
func (r *Repository) SetCreditScore(ctx context.Context, customerID string, score int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE "Customer" SET credit_score = $2 WHERE customer_id = $1`, customerID, score,
	)
	if err != nil {
		return fmt.Errorf("update credit score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s not found", customerID)
	}
	return nil
}

// ResolveTier finds the single credit tier whose band contains score.
func (r *Repository) ResolveTier(ctx context.Context, score int) (*contracts.CreditTier, error) {
	query := `
		SELECT credit_tier_id, name, min_credit_score, max_credit_score, credit_limit
		FROM "CreditTier"
		WHERE $1 BETWEEN min_credit_score AND max_credit_score
	`

	rows, err := r.pool.Query(ctx, query, score)
	if err != nil {
		return nil, fmt.Errorf("query credit tiers: %w", err)
	}
	defer rows.Close()

	var tiers []contracts.CreditTier
	for rows.Next() {
		var t contracts.CreditTier
		if err := rows.Scan(&t.ID, &t.Name, &t.MinScore, &t.MaxScore, &t.CreditLimit); err != nil {
			return nil, fmt.Errorf("scan credit tier: %w", err)
		}
		tiers = append(tiers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(tiers) {
	case 0:
		return nil, fmt.Errorf("%w: score %d", contracts.ErrNoCreditTierMatch, score)
	case 1:
		return &tiers[0], nil
	default:
		return nil, fmt.Errorf("%w: score %d matches %d tiers", contracts.ErrAmbiguousCreditTierMatch, score, len(tiers))
	}
}

// ListCustomerIDs returns the ids of all active customers.
func (r *Repository) ListCustomerIDs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT customer_id FROM "Customer" WHERE status = 'ACTIVE' ORDER BY customer_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan customer id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
