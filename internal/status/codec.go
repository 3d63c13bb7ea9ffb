// Package status maps raw per-month payment symbols onto the canonical
// ordinal scale and resolves consecutive-default streaks.
package status

import (
	"fmt"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
)

// letterClass maps credit-bureau report letter codes to canonical statuses.
// A  on time (0 or 1 overdue cycle)
// B  2 months overdue (30-59 days)
// C  3 months overdue (60-89 days)
// D  4+ months overdue (90+ days)
// E  closed, no outstanding
// *  facility not used or zero balance
// G  voluntary closure with outstanding
// H  involuntary closure with outstanding
// R  closed, restructured loan
// S  closed, negotiated settlement
// W  default record
// M  account status not available
var letterClass = map[rune]contracts.Status{
	'A': contracts.StatusOnTime,
	'B': 2,
	'C': 3,
	'D': 4,
	'E': contracts.StatusNoData,
	'*': 0,
	'G': 0,
	'H': 5,
	'R': 0,
	'S': 0,
	'W': 6,
	'M': 0,
}

// MapSymbol converts one bureau letter code to its canonical status.
func MapSymbol(sym rune) (contracts.Status, error) {
	s, ok := letterClass[sym]
	if !ok {
		return 0, fmt.Errorf("%w: %q", contracts.ErrUnknownStatusCode, sym)
	}
	return s, nil
}

// MapSequence converts a run of bureau letter codes, preserving order.
func MapSequence(seq string) ([]contracts.Status, error) {
	out := make([]contracts.Status, 0, len(seq))
	for _, sym := range seq {
		s, err := MapSymbol(sym)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
