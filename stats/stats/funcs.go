// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"slices"
)

// StatsFunc is the function signature for a stats function,
// operating on a vector of float64 values and returning the
// single statistic value. All stats functions skip NaN values,
// as missing data. Statistics that are undefined for the number
// of non-NaN values present return NaN, so that downstream
// missing-data logic applies to them too.
type StatsFunc func(vals []float64) float64

// VecFunc applies the given aggregation function to all non-NaN values,
// starting from the given initial value, returning the aggregate
// and the count of non-NaN values aggregated.
func VecFunc(vals []float64, ini float64, fun func(val, agg float64) float64) (agg float64, n int) {
	agg = ini
	for _, val := range vals {
		if math.IsNaN(val) {
			continue
		}
		agg = fun(val, agg)
		n++
	}
	return
}

// CountFunc computes the count of non-NaN values.
// See [StatsFunc] for general information.
func CountFunc(vals []float64) float64 {
	cnt, _ := VecFunc(vals, 0, func(val, agg float64) float64 {
		return agg + 1
	})
	return cnt
}

// SumFunc computes the sum of values.
// See [StatsFunc] for general information.
func SumFunc(vals []float64) float64 {
	sum, _ := VecFunc(vals, 0, func(val, agg float64) float64 {
		return agg + val
	})
	return sum
}

// SumAbsFunc computes the sum of absolute-value-of values.
// This is also known as the L1 norm.
// See [StatsFunc] for general information.
func SumAbsFunc(vals []float64) float64 {
	sum, _ := VecFunc(vals, 0, func(val, agg float64) float64 {
		return agg + math.Abs(val)
	})
	return sum
}

// ProdFunc computes the product of values.
// See [StatsFunc] for general information.
func ProdFunc(vals []float64) float64 {
	prod, _ := VecFunc(vals, 1, func(val, agg float64) float64 {
		return agg * val
	})
	return prod
}

// MinFunc computes the min of values, NaN if there are none.
// See [StatsFunc] for general information.
func MinFunc(vals []float64) float64 {
	mv, n := VecFunc(vals, math.MaxFloat64, func(val, agg float64) float64 {
		return math.Min(agg, val)
	})
	if n == 0 {
		return math.NaN()
	}
	return mv
}

// MaxFunc computes the max of values, NaN if there are none.
// See [StatsFunc] for general information.
func MaxFunc(vals []float64) float64 {
	mv, n := VecFunc(vals, -math.MaxFloat64, func(val, agg float64) float64 {
		return math.Max(agg, val)
	})
	if n == 0 {
		return math.NaN()
	}
	return mv
}

// MinAbsFunc computes the min of absolute-value-of values, NaN if none.
// See [StatsFunc] for general information.
func MinAbsFunc(vals []float64) float64 {
	mv, n := VecFunc(vals, math.MaxFloat64, func(val, agg float64) float64 {
		return math.Min(agg, math.Abs(val))
	})
	if n == 0 {
		return math.NaN()
	}
	return mv
}

// MaxAbsFunc computes the max of absolute-value-of values, NaN if none.
// See [StatsFunc] for general information.
func MaxAbsFunc(vals []float64) float64 {
	mv, n := VecFunc(vals, -math.MaxFloat64, func(val, agg float64) float64 {
		return math.Max(agg, math.Abs(val))
	})
	if n == 0 {
		return math.NaN()
	}
	return mv
}

// MeanFunc computes the mean of values, NaN if there are none.
// See [StatsFunc] for general information.
func MeanFunc(vals []float64) float64 {
	mean, _ := MeanCount(vals)
	return mean
}

// MeanCount computes the mean of the non-NaN values, along with their
// count, for subsequent use. Mean is NaN if the count is 0.
func MeanCount(vals []float64) (mean float64, n int) {
	sum, n := VecFunc(vals, 0, func(val, agg float64) float64 {
		return agg + val
	})
	if n == 0 {
		return math.NaN(), 0
	}
	return sum / float64(n), n
}

// SumSqDevCount computes the sum of squared deviations from the mean
// of the non-NaN values, along with their count, for subsequent use.
func SumSqDevCount(vals []float64) (ssd float64, n int) {
	mean, n := MeanCount(vals)
	if n == 0 {
		return math.NaN(), 0
	}
	ssd, _ = VecFunc(vals, 0, func(val, agg float64) float64 {
		dv := val - mean
		return agg + dv*dv
	})
	return ssd, n
}

// VarFunc computes the sample variance of values.
// Squared deviations from mean, divided by n-1.
// NaN if there are fewer than 2 values. See also [VarPopFunc].
// See [StatsFunc] for general information.
func VarFunc(vals []float64) float64 {
	ssd, n := SumSqDevCount(vals)
	if n < 2 {
		return math.NaN()
	}
	return ssd / float64(n-1)
}

// StdFunc computes the sample standard deviation of values.
// Sqrt of variance from [VarFunc]. See also [StdPopFunc].
// See [StatsFunc] for general information.
func StdFunc(vals []float64) float64 {
	return math.Sqrt(VarFunc(vals))
}

// SemFunc computes the sample standard error of the mean of values.
// Standard deviation [StdFunc] / sqrt(n). See also [SemPopFunc].
// See [StatsFunc] for general information.
func SemFunc(vals []float64) float64 {
	ssd, n := SumSqDevCount(vals)
	if n < 2 {
		return math.NaN()
	}
	return math.Sqrt(ssd/float64(n-1)) / math.Sqrt(float64(n))
}

// VarPopFunc computes the population variance of values.
// Squared deviations from mean, divided by n. NaN if there are no
// values. See also [VarFunc].
// See [StatsFunc] for general information.
func VarPopFunc(vals []float64) float64 {
	ssd, n := SumSqDevCount(vals)
	if n == 0 {
		return math.NaN()
	}
	return ssd / float64(n)
}

// StdPopFunc computes the population standard deviation of values.
// Sqrt of variance from [VarPopFunc]. See also [StdFunc].
// See [StatsFunc] for general information.
func StdPopFunc(vals []float64) float64 {
	return math.Sqrt(VarPopFunc(vals))
}

// SemPopFunc computes the population standard error of the mean of values.
// Standard deviation [StdPopFunc] / sqrt(n). See also [SemFunc].
// See [StatsFunc] for general information.
func SemPopFunc(vals []float64) float64 {
	ssd, n := SumSqDevCount(vals)
	if n == 0 {
		return math.NaN()
	}
	return math.Sqrt(ssd/float64(n)) / math.Sqrt(float64(n))
}

// SumSqScale is a helper for sum-of-squares, returning scale and ss
// factors aggregated separately for better numerical stability, per BLAS.
func SumSqScale(vals []float64) (scale, ss float64) {
	scale, ss = 0, 1
	for _, val := range vals {
		if math.IsNaN(val) || val == 0 {
			continue
		}
		absxi := math.Abs(val)
		if scale < absxi {
			ss = 1 + ss*(scale/absxi)*(scale/absxi)
			scale = absxi
		} else {
			ss = ss + (absxi/scale)*(absxi/scale)
		}
	}
	return
}

// SumSqFunc computes the sum of squares of values.
// See [StatsFunc] for general information.
func SumSqFunc(vals []float64) float64 {
	scale, ss := SumSqScale(vals)
	if math.IsInf(scale, 1) {
		return math.Inf(1)
	}
	return scale * scale * ss
}

// L2NormFunc computes the square root of the sum of squares of values,
// known as the L2 norm.
// See [StatsFunc] for general information.
func L2NormFunc(vals []float64) float64 {
	scale, ss := SumSqScale(vals)
	if math.IsInf(scale, 1) {
		return math.Inf(1)
	}
	return scale * math.Sqrt(ss)
}

// Quantile returns the given quantile of the non-NaN values
// (q = 0..1, e.g., 0.5 = median, 0.25 = lower quartile,
// 0.75 = upper quartile), using linear interpolation between the
// two nearest sorted values. Returns NaN if there are no values.
func Quantile(vals []float64, q float64) float64 {
	sorted := make([]float64, 0, len(vals))
	for _, val := range vals {
		if !math.IsNaN(val) {
			sorted = append(sorted, val)
		}
	}
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	slices.Sort(sorted)
	fi := q * float64(n-1)
	lwi := math.Floor(fi)
	lwii := int(lwi)
	if lwii >= n-1 {
		return sorted[n-1]
	}
	if lwii < 0 {
		return sorted[0]
	}
	phi := fi - lwi
	return (1-phi)*sorted[lwii] + phi*sorted[lwii+1]
}

// MedianFunc computes the middle value in the sorted ordering of
// the non-NaN values, NaN if there are none.
// See [StatsFunc] for general information.
func MedianFunc(vals []float64) float64 {
	return Quantile(vals, .5)
}

// Q1Func computes the first quartile (.25 quantile) of the non-NaN
// values, NaN if there are none.
// See [StatsFunc] for general information.
func Q1Func(vals []float64) float64 {
	return Quantile(vals, .25)
}

// Q3Func computes the third quartile (.75 quantile) of the non-NaN
// values, NaN if there are none.
// See [StatsFunc] for general information.
func Q3Func(vals []float64) float64 {
	return Quantile(vals, .75)
}
