// Package timeline assembles calendar-aligned status timelines from sparse
// per-month records and from the instalment-payment ledger.
package timeline

import (
	"fmt"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
)

// Assemble densifies a sparse {month → status} map into a timeline running
// from anchor through now inclusive. Months without a record are
// StatusNoData. The anchor must not be later than now.
func Assemble(byMonth map[contracts.MonthKey]contracts.Status, anchor, now contracts.MonthKey) (contracts.Timeline, error) {
	anchor = anchor.Normalize()
	now = now.Normalize()

	total := anchor.MonthsUntil(now) + 1
	if total < 1 {
		return nil, fmt.Errorf("timeline anchor %d-%02d is after current month %d-%02d",
			anchor.Year, anchor.Month, now.Year, now.Month)
	}

	tl := make(contracts.Timeline, total)
	for i := range tl {
		tl[i] = contracts.StatusNoData
	}
	for i := 0; i < total; i++ {
		if s, ok := byMonth[anchor.AddMonths(i)]; ok {
			tl[i] = s
		}
	}
	return tl, nil
}

// FromSequence aligns an already-dense raw sequence so that its last element
// lands on the current month, via the same assembly path as sparse records.
func FromSequence(seq []contracts.Status, now contracts.MonthKey) (contracts.Timeline, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("empty status sequence")
	}
	anchor := now.AddMonths(-(len(seq) - 1))
	byMonth := make(map[contracts.MonthKey]contracts.Status, len(seq))
	for i, s := range seq {
		byMonth[anchor.AddMonths(i)] = s
	}
	return Assemble(byMonth, anchor, now)
}
