package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
)

func TestResolveStreaks(t *testing.T) {
	tests := []struct {
		name     string
		defaults []bool
		want     []contracts.Status
	}{
		{
			name:     "mixed run",
			defaults: []bool{false, false, true, true, true, false},
			want:     []contracts.Status{-1, -1, 1, 2, 3, -1},
		},
		{
			name:     "restart after on-time month",
			defaults: []bool{true, false, true, true},
			want:     []contracts.Status{1, -1, 1, 2},
		},
		{
			name:     "eight defaults capped at six",
			defaults: []bool{true, true, true, true, true, true, true, true},
			want:     []contracts.Status{1, 2, 3, 4, 5, 6, 6, 6},
		},
		{
			name:     "empty",
			defaults: nil,
			want:     []contracts.Status{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStreaks(tt.defaults))
		})
	}
}

func TestReclassifySingles(t *testing.T) {
	codes := []contracts.Status{1, -1, 1, 2, 3, -2, 1}
	ReclassifySingles(codes)
	assert.Equal(t, []contracts.Status{-1, -1, -1, 2, 3, -2, -1}, codes)
}

func TestReclassifySingles_RewritesEveryExactOne(t *testing.T) {
	codes := ResolveStreaks([]bool{true, true, false, true})
	// [1 2 -1 1] before reclassification; every exact 1 collapses, even the
	// opening month of the longer streak.
	ReclassifySingles(codes)
	assert.Equal(t, []contracts.Status{-1, 2, -1, -1}, codes)
}
