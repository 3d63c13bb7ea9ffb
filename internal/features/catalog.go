// Package features derives the model input vector from a canonical timeline
// and a utilization ratio.
package features

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// seriesName is the column the timeline is melted into before feature
// extraction; every descriptor name is prefixed with it, tsfresh-style.
const seriesName = "repayment_status"

// Catalog computes the full set of statistical descriptors over a status
// series (value = canonical status, time = position). Descriptors that are
// undefined for the series (zero variance, too few points) come out as NaN
// and are imputed downstream.
func Catalog(series []float64) map[string]float64 {
	n := len(series)
	nf := float64(n)
	out := make(map[string]float64, 64)

	put := func(name string, v float64) {
		out[seriesName+"__"+name] = v
	}

	sum := 0.0
	energy := 0.0
	for _, v := range series {
		sum += v
		energy += v * v
	}
	mean := stat.Mean(series, nil)
	variance := popVariance(series, mean)
	stdDev := math.Sqrt(variance)
	minV, maxV := extremes(series)

	put("sum_values", sum)
	put("abs_energy", energy)
	put("mean", mean)
	put("median", median(series))
	put("length", nf)
	put("standard_deviation", stdDev)
	put("variance", variance)
	put("variance_larger_than_standard_deviation", boolFeature(variance > stdDev))
	put("maximum", maxV)
	put("minimum", minV)
	put("root_mean_square", math.Sqrt(energy/nf))
	put("skewness", stat.Skew(series, nil))
	put("kurtosis", stat.ExKurtosis(series, nil))

	put("mean_change", (series[n-1]-series[0])/float64(n-1))
	put("mean_abs_change", meanAbsChange(series))
	put("absolute_sum_of_changes", absSumOfChanges(series))
	put("mean_second_derivative_central", meanSecondDerivative(series))

	above, below := 0.0, 0.0
	for _, v := range series {
		if v > mean {
			above++
		}
		if v < mean {
			below++
		}
	}
	put("count_above_mean", above)
	put("count_below_mean", below)
	put("longest_strike_above_mean", longestStrike(series, func(v float64) bool { return v > mean }))
	put("longest_strike_below_mean", longestStrike(series, func(v float64) bool { return v < mean }))

	put("first_location_of_maximum", float64(firstIndexOf(series, maxV))/nf)
	put("last_location_of_maximum", float64(lastIndexOf(series, maxV)+1)/nf)
	put("first_location_of_minimum", float64(firstIndexOf(series, minV))/nf)
	put("last_location_of_minimum", float64(lastIndexOf(series, minV)+1)/nf)

	put("has_duplicate", boolFeature(hasDuplicate(series)))
	put("has_duplicate_max", boolFeature(countOf(series, maxV) > 1))
	put("has_duplicate_min", boolFeature(countOf(series, minV) > 1))

	for lag := 0; lag <= 6; lag++ {
		put(fmt.Sprintf("autocorrelation__lag_%d", lag), autocorrelation(series, mean, variance, lag))
	}

	for _, q := range []float64{0.1, 0.25, 0.75, 0.9} {
		put(fmt.Sprintf("quantile__q_%v", q), quantile(series, q))
	}

	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i)
	}
	intercept, slope := stat.LinearRegression(ts, series, nil, false)
	put(`linear_trend__attr_"slope"`, slope)
	put(`linear_trend__attr_"intercept"`, intercept)
	put(`linear_trend__attr_"rvalue"`, stat.Correlation(ts, series, nil))

	return out
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// popVariance is the population variance; tsfresh uses numpy's default
// divisor n, not the sample divisor n-1.
func popVariance(series []float64, mean float64) float64 {
	sum := 0.0
	for _, v := range series {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(series))
}

func extremes(series []float64) (min, max float64) {
	min, max = series[0], series[0]
	for _, v := range series[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func median(series []float64) float64 {
	sorted := append([]float64(nil), series...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func quantile(series []float64, q float64) float64 {
	sorted := append([]float64(nil), series...)
	sort.Float64s(sorted)
	return stat.Quantile(q, stat.Empirical, sorted, nil)
}

func meanAbsChange(series []float64) float64 {
	if len(series) < 2 {
		return math.NaN()
	}
	sum := 0.0
	for i := 1; i < len(series); i++ {
		sum += math.Abs(series[i] - series[i-1])
	}
	return sum / float64(len(series)-1)
}

func absSumOfChanges(series []float64) float64 {
	sum := 0.0
	for i := 1; i < len(series); i++ {
		sum += math.Abs(series[i] - series[i-1])
	}
	return sum
}

func meanSecondDerivative(series []float64) float64 {
	n := len(series)
	if n < 3 {
		return math.NaN()
	}
	sum := 0.0
	for i := 0; i+2 < n; i++ {
		sum += (series[i+2] - 2*series[i+1] + series[i]) / 2
	}
	return sum / float64(n-2)
}

func longestStrike(series []float64, pred func(float64) bool) float64 {
	longest, run := 0, 0
	for _, v := range series {
		if pred(v) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return float64(longest)
}

func firstIndexOf(series []float64, target float64) int {
	for i, v := range series {
		if v == target {
			return i
		}
	}
	return 0
}

func lastIndexOf(series []float64, target float64) int {
	for i := len(series) - 1; i >= 0; i-- {
		if series[i] == target {
			return i
		}
	}
	return 0
}

func countOf(series []float64, target float64) int {
	count := 0
	for _, v := range series {
		if v == target {
			count++
		}
	}
	return count
}

func hasDuplicate(series []float64) bool {
	seen := make(map[float64]struct{}, len(series))
	for _, v := range series {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}

// autocorrelation at the given lag, normalized by the population variance.
func autocorrelation(series []float64, mean, variance float64, lag int) float64 {
	n := len(series)
	if lag >= n || variance == 0 {
		return math.NaN()
	}
	sum := 0.0
	for i := 0; i+lag < n; i++ {
		sum += (series[i] - mean) * (series[i+lag] - mean)
	}
	return sum / (float64(n-lag) * variance)
}
