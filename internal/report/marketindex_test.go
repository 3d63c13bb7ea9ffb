package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
	"github.com/dayumstir/IS4103-Capstone/pkg/logger"
)

// fixedRand always draws the same value.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

// indexPage builds a synthetic consumer-credit-index page whose trailing
// table reports the given delinquency rate in every cell.
func indexPage(rate string) string {
	var b strings.Builder
	b.WriteString("Consumer Credit Index\n")
	b.WriteString("Unsecured Credit Card by Age Groups\n")
	b.WriteString("Delinquency Rates\n")

	months := []string{"Jan 2024", "Feb 2024", "Mar 2024", "Apr 2024", "May 2024", "Jun 2024"}
	for _, m := range months {
		b.WriteString(m + "\n")
		for c := 0; c < indexTableCols-1; c++ {
			b.WriteString(rate + "\n")
		}
	}
	// Trailing footer block below the table, excluded from parsing.
	for i := 0; i < indexTableCols; i++ {
		b.WriteString(fmt.Sprintf("footer line %d\n", i))
	}
	return b.String()
}

func TestMarketIndexExtractor_ZeroDelinquencyNeverDefaults(t *testing.T) {
	e := NewMarketIndexExtractor(fixedRand(0), DefaultAverageUtilization, logger.Nop())

	got, err := e.Extract(textPages{indexPage("0.0%")})
	require.NoError(t, err)

	// A draw in [0,1) is never < 0, so every month is on time.
	assert.Equal(t, []contracts.Status{-1, -1, -1, -1, -1, -1}, got.Sequence)
	assert.InDelta(t, 2.3217, got.Utilization, 1e-9)
}

func TestMarketIndexExtractor_CertainDelinquencyStreaks(t *testing.T) {
	e := NewMarketIndexExtractor(fixedRand(0), DefaultAverageUtilization, logger.Nop())

	got, err := e.Extract(textPages{indexPage("100.0%")})
	require.NoError(t, err)

	// Every month defaults; the opening single-month code is reclassified.
	assert.Equal(t, []contracts.Status{-1, 2, 3, 4, 5, 6}, got.Sequence)
}

func TestMarketIndexExtractor_ConfiguredUtilization(t *testing.T) {
	e := NewMarketIndexExtractor(fixedRand(0), 1.5, logger.Nop())

	got, err := e.Extract(textPages{indexPage("0.0%")})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got.Utilization, 1e-9)
}

func TestMarketIndexExtractor_SectionNotFound(t *testing.T) {
	e := NewMarketIndexExtractor(fixedRand(0), DefaultAverageUtilization, logger.Nop())

	_, err := e.Extract(textPages{"Quarterly overview", "Mortgage trends"})
	assert.ErrorIs(t, err, contracts.ErrSectionNotFound)
}

func TestMarketIndexExtractor_TruncatedTable(t *testing.T) {
	page := "Unsecured Credit Card by Age Groups\nDelinquency\n1.0%\n2.0%\n"

	e := NewMarketIndexExtractor(fixedRand(0), DefaultAverageUtilization, logger.Nop())
	_, err := e.Extract(textPages{page})
	assert.ErrorIs(t, err, contracts.ErrSectionNotFound)
}
