package status

import "github.com/dayumstir/IS4103-Capstone/internal/contracts"

// ResolveStreaks converts per-month "ended in default" flags into canonical
// streak codes. A non-default month is StatusOnTime; a default month carries
// the length of the consecutive-default run ending at it, capped at
// MaxStreak. The walk is a forward accumulator, so long timelines carry no
// stack-depth risk.
func ResolveStreaks(defaults []bool) []contracts.Status {
	codes := make([]contracts.Status, len(defaults))
	streak := 0
	for i, defaulted := range defaults {
		if !defaulted {
			streak = 0
			codes[i] = contracts.StatusOnTime
			continue
		}
		if streak < contracts.MaxStreak {
			streak++
		}
		codes[i] = contracts.Status(streak)
	}
	return codes
}

// ReclassifySingles rewrites streaks of exactly one month to StatusOnTime,
// in place. Only the market-index synthesis path applies this; ledger- and
// report-derived sequences keep their single-month streaks. The asymmetry is
// deliberate and must not be unified: it changes the default rate the model
// observes.
func ReclassifySingles(codes []contracts.Status) {
	for i, c := range codes {
		if c == 1 {
			codes[i] = contracts.StatusOnTime
		}
	}
}
