package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
	"github.com/dayumstir/IS4103-Capstone/pkg/logger"
)

// textPages is an in-memory PageTextSource for tests.
type textPages []string

func (t textPages) Pages() ([]string, error) { return t, nil }

const reportPage = `Credit Bureau Report
Unsecured Credit Card
Account Status History
AAABBCAAAAAA
Outstanding Balance
500.00
HDB Loan
Nothing relevant below
Unsecured Credit Limit
1,000
Applicant Type
Main`

func TestExtractor_Extract(t *testing.T) {
	e := NewExtractor(logger.Nop())

	got, err := e.Extract(textPages{reportPage})
	require.NoError(t, err)

	assert.Equal(t, []contracts.Status{-1, -1, -1, 2, 2, 3}, got.Sequence)
	assert.InDelta(t, 0.5, got.Utilization, 1e-9)
}

func TestExtractor_DefaultCreditLimit(t *testing.T) {
	page := `Unsecured Credit Card
Account Status History
AAAAAAAAAAAA
Outstanding Balance
20.00
HDB Loan`

	e := NewExtractor(logger.Nop())
	got, err := e.Extract(textPages{page})
	require.NoError(t, err)

	// No credit-limit section: the default limit of 10 applies.
	assert.InDelta(t, 2.0, got.Utilization, 1e-9)
}

func TestExtractor_BalanceTruncated(t *testing.T) {
	page := strings.Replace(reportPage, "500.00", "500.99", 1)

	e := NewExtractor(logger.Nop())
	got, err := e.Extract(textPages{page})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got.Utilization, 1e-9)
}

func TestExtractor_SectionNotFound(t *testing.T) {
	e := NewExtractor(logger.Nop())

	_, err := e.Extract(textPages{"Some unrelated report page"})
	assert.ErrorIs(t, err, contracts.ErrSectionNotFound)
}

func TestExtractor_BalanceNotFound(t *testing.T) {
	page := `Unsecured Credit Card
Account Status History
AAAAAAAAAAAA
HDB Loan`

	e := NewExtractor(logger.Nop())
	_, err := e.Extract(textPages{page})
	assert.ErrorIs(t, err, contracts.ErrBalanceNotFound)
}

func TestExtractor_SectionSpansToPageEndWithoutEndAnchor(t *testing.T) {
	page := `Unsecured Credit Card
Account Status History
BBBBBBAAAAAA
1000.50`

	e := NewExtractor(logger.Nop())
	got, err := e.Extract(textPages{page})
	require.NoError(t, err)
	assert.Equal(t, []contracts.Status{2, 2, 2, 2, 2, 2}, got.Sequence)
	// Balance 1000 over the default limit of 10.
	assert.InDelta(t, 100.0, got.Utilization, 1e-9)
}

func TestExtractor_FirstTwelveSymbolRunWins(t *testing.T) {
	page := `Unsecured Credit Card
Account Status History
AAAAAA
AAABBCAAAAAA
DDDDDDDDDDDD
10.00
HDB Loan`

	e := NewExtractor(logger.Nop())
	got, err := e.Extract(textPages{page})
	require.NoError(t, err)
	assert.Equal(t, []contracts.Status{-1, -1, -1, 2, 2, 3}, got.Sequence)
}

func TestExtractor_ZeroCreditLimit(t *testing.T) {
	page := strings.Replace(reportPage, "1,000", "0", 1)

	e := NewExtractor(logger.Nop())
	_, err := e.Extract(textPages{page})
	assert.ErrorIs(t, err, contracts.ErrMissingCreditLimit)
}
