package contracts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthKey_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   MonthKey
		want MonthKey
	}{
		{"in range", MonthKey{2024, 7}, MonthKey{2024, 7}},
		{"december", MonthKey{2024, 12}, MonthKey{2024, 12}},
		{"overflow one", MonthKey{2024, 13}, MonthKey{2025, 1}},
		{"overflow many", MonthKey{2024, 26}, MonthKey{2026, 2}},
		{"zero month", MonthKey{2024, 0}, MonthKey{2023, 12}},
		{"negative month", MonthKey{2024, -5}, MonthKey{2023, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestMonthKey_AddMonths(t *testing.T) {
	k := MonthKey{2024, 11}

	assert.Equal(t, MonthKey{2025, 1}, k.AddMonths(2))
	assert.Equal(t, MonthKey{2024, 6}, k.AddMonths(-5))
	assert.Equal(t, k, k.AddMonths(0))
}

func TestMonthKey_BeforeAndMonthsUntil(t *testing.T) {
	a := MonthKey{2024, 11}
	b := MonthKey{2025, 2}

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))

	assert.Equal(t, 3, a.MonthsUntil(b))
	assert.Equal(t, -3, b.MonthsUntil(a))
}

func TestMonthKeyOf(t *testing.T) {
	ts := time.Date(2024, time.March, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, MonthKey{2024, 3}, MonthKeyOf(ts))
}

func TestStatus_Defaulted(t *testing.T) {
	assert.False(t, StatusNoData.Defaulted())
	assert.False(t, StatusOnTime.Defaulted())
	assert.True(t, Status(1).Defaulted())
	assert.True(t, Status(MaxStreak).Defaulted())
}

func TestCreditTier_Contains(t *testing.T) {
	tier := CreditTier{Name: "Gold", MinScore: 600, MaxScore: 799}

	assert.True(t, tier.Contains(600))
	assert.True(t, tier.Contains(799))
	assert.False(t, tier.Contains(599))
	assert.False(t, tier.Contains(800))
}

func TestInstalmentPayment_Paid(t *testing.T) {
	due := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	paid := due.AddDate(0, 0, 3)

	assert.False(t, InstalmentPayment{DueDate: due}.Paid())
	assert.True(t, InstalmentPayment{DueDate: due, PaidDate: &paid}.Paid())
}
