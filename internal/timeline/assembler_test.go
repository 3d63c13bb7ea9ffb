package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
)

func TestMonthKey_Normalize(t *testing.T) {
	tests := []struct {
		in, want contracts.MonthKey
	}{
		{contracts.MonthKey{Year: 2024, Month: 13}, contracts.MonthKey{Year: 2025, Month: 1}},
		{contracts.MonthKey{Year: 2024, Month: 12}, contracts.MonthKey{Year: 2024, Month: 12}},
		{contracts.MonthKey{Year: 2024, Month: 25}, contracts.MonthKey{Year: 2026, Month: 1}},
		{contracts.MonthKey{Year: 2024, Month: 0}, contracts.MonthKey{Year: 2023, Month: 12}},
		{contracts.MonthKey{Year: 2024, Month: 1}, contracts.MonthKey{Year: 2024, Month: 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Normalize(), "normalize %+v", tt.in)
	}
}

func TestMonthKey_MonthsUntil(t *testing.T) {
	jan := contracts.MonthKey{Year: 2024, Month: 1}
	jun := contracts.MonthKey{Year: 2024, Month: 6}
	assert.Equal(t, 5, jan.MonthsUntil(jun))
	assert.Equal(t, -5, jun.MonthsUntil(jan))
	assert.Equal(t, 12, jan.MonthsUntil(contracts.MonthKey{Year: 2025, Month: 1}))
}

func TestAssemble_LengthAndGapFill(t *testing.T) {
	anchor := contracts.MonthKey{Year: 2024, Month: 1}
	now := contracts.MonthKey{Year: 2024, Month: 6}

	byMonth := map[contracts.MonthKey]contracts.Status{
		{Year: 2024, Month: 2}: 3,
		{Year: 2024, Month: 5}: contracts.StatusOnTime,
	}

	tl, err := Assemble(byMonth, anchor, now)
	require.NoError(t, err)
	require.Len(t, tl, 6)
	assert.Equal(t, contracts.Timeline{-2, 3, -2, -2, -1, -2}, tl)
}

func TestAssemble_YearRollover(t *testing.T) {
	anchor := contracts.MonthKey{Year: 2023, Month: 11}
	now := contracts.MonthKey{Year: 2024, Month: 2}

	byMonth := map[contracts.MonthKey]contracts.Status{
		{Year: 2024, Month: 1}: 2,
	}

	tl, err := Assemble(byMonth, anchor, now)
	require.NoError(t, err)
	assert.Equal(t, contracts.Timeline{-2, -2, 2, -2}, tl)
}

func TestAssemble_SingleMonth(t *testing.T) {
	now := contracts.MonthKey{Year: 2024, Month: 6}
	tl, err := Assemble(nil, now, now)
	require.NoError(t, err)
	assert.Equal(t, contracts.Timeline{-2}, tl)
}

func TestAssemble_AnchorAfterNow(t *testing.T) {
	_, err := Assemble(nil, contracts.MonthKey{Year: 2024, Month: 7}, contracts.MonthKey{Year: 2024, Month: 6})
	assert.Error(t, err)
}

func TestFromSequence(t *testing.T) {
	now := contracts.MonthKey{Year: 2024, Month: 6}
	seq := []contracts.Status{-1, -1, -1, 2, 2, 3}

	tl, err := FromSequence(seq, now)
	require.NoError(t, err)
	assert.Equal(t, contracts.Timeline(seq), tl)
}

func TestFromSequence_Empty(t *testing.T) {
	_, err := FromSequence(nil, contracts.MonthKey{Year: 2024, Month: 6})
	assert.Error(t, err)
}
