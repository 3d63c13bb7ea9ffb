package timeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
	"github.com/dayumstir/IS4103-Capstone/pkg/logger"
)

// fakeStore serves canned instalments; the other LedgerStore methods are
// unused by the builder.
type fakeStore struct {
	payments []contracts.InstalmentPayment
	since    time.Time
}

func (f *fakeStore) FetchPayments(_ context.Context, _ string, since time.Time) ([]contracts.InstalmentPayment, error) {
	f.since = since
	return f.payments, nil
}

func (f *fakeStore) OutstandingBalance(context.Context, string) (float64, error) { return 0, nil }
func (f *fakeStore) CreditLimit(context.Context, string) (int, error)            { return 0, nil }
func (f *fakeStore) GetCreditScore(context.Context, string) (int, error)         { return 0, nil }
func (f *fakeStore) SetCreditScore(context.Context, string, int) error           { return nil }
func (f *fakeStore) ResolveTier(context.Context, int) (*contracts.CreditTier, error) {
	return nil, nil
}
func (f *fakeStore) ListCustomerIDs(context.Context) ([]string, error) { return nil, nil }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestLatenessClass(t *testing.T) {
	now := date(2024, time.June, 15)

	tests := []struct {
		name string
		p    contracts.InstalmentPayment
		want contracts.Status
	}{
		{
			name: "paid on time",
			p:    contracts.InstalmentPayment{DueDate: date(2024, time.March, 10), PaidDate: datePtr(2024, time.March, 5)},
			want: -1,
		},
		{
			name: "paid one month late counts as on time",
			p:    contracts.InstalmentPayment{DueDate: date(2024, time.March, 10), PaidDate: datePtr(2024, time.April, 2)},
			want: -1,
		},
		{
			name: "paid three months late",
			p:    contracts.InstalmentPayment{DueDate: date(2024, time.January, 10), PaidDate: datePtr(2024, time.April, 2)},
			want: 3,
		},
		{
			name: "paid very late clamps at nine",
			p:    contracts.InstalmentPayment{DueDate: date(2023, time.January, 10), PaidDate: datePtr(2024, time.June, 2)},
			want: 9,
		},
		{
			name: "unpaid due this month",
			p:    contracts.InstalmentPayment{DueDate: date(2024, time.June, 28)},
			want: -1,
		},
		{
			name: "unpaid four months overdue",
			p:    contracts.InstalmentPayment{DueDate: date(2024, time.February, 1)},
			want: 4,
		},
		{
			name: "unpaid clamps at six",
			p:    contracts.InstalmentPayment{DueDate: date(2023, time.August, 1)},
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, latenessClass(tt.p, now))
		})
	}
}

func TestLedgerBuilder_Build(t *testing.T) {
	now := date(2024, time.June, 15)
	store := &fakeStore{payments: []contracts.InstalmentPayment{
		// Two instalments due in March: on time and two months late; the
		// worse class must win.
		{DueDate: date(2024, time.March, 10), PaidDate: datePtr(2024, time.March, 12)},
		{DueDate: date(2024, time.March, 20), PaidDate: datePtr(2024, time.May, 1)},
		// April unpaid, two months overdue.
		{DueDate: date(2024, time.April, 5)},
		// June paid early.
		{DueDate: date(2024, time.June, 1), PaidDate: datePtr(2024, time.May, 30)},
	}}

	b := NewLedgerBuilder(store, logger.Nop()).WithClock(func() time.Time { return now })

	tl, err := b.Build(context.Background(), "customer-1")
	require.NoError(t, err)

	// Anchored at March, through June: [Mar Apr May Jun].
	assert.Equal(t, contracts.Timeline{2, 2, -2, -1}, tl)

	// Lookback window starts six calendar months before now.
	assert.Equal(t, now.AddDate(0, -LookbackMonths, 0), store.since)
}

func TestLedgerBuilder_NoPayments(t *testing.T) {
	b := NewLedgerBuilder(&fakeStore{}, logger.Nop()).
		WithClock(func() time.Time { return date(2024, time.June, 15) })

	tl, err := b.Build(context.Background(), "customer-1")
	require.NoError(t, err)
	assert.Equal(t, contracts.Timeline{-2}, tl)
}
