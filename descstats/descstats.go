// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package descstats computes descriptive statistics over a sample of values,
// treating the sample as an entire population.
//
// The computations are written out by hand rather than delegated to a
// numerical library: sums use compensated (Kahan) summation, the median
// sorts a copy of the sample with a stable merge sort, the mode is found by
// explicit counting, and square roots are computed by Newton's method.
package descstats

import (
	"errors"
	"math"

	"github.com/creachadair/datatools/internal/msort"
)

// ErrEmpty is reported by functions that have no defined value for an
// empty sample.
var ErrEmpty = errors.New("empty sample")

// A Result records the descriptive statistics of a sample.
// The zero value describes an empty sample.
type Result struct {
	Count    int       // the number of values in the sample
	Mean     float64   // arithmetic mean
	Median   float64   // middle value, or mean of the two middle values
	Modes    []float64 // most frequent values, in order of first occurrence
	Variance float64   // population variance (divisor N)
	StdDev   float64   // population standard deviation

	// Defined reports whether the statistics are defined, that is, whether
	// the sample had at least one value. When Defined is false, all the
	// numeric fields are zero.
	Defined bool
}

// Mode returns the first of the most frequent values, or 0 if r is not
// defined.
func (r Result) Mode() float64 {
	if len(r.Modes) == 0 {
		return 0
	}
	return r.Modes[0]
}

// Compute computes the descriptive statistics of values. It does not modify
// values. If values is empty, the result has Defined == false.
func Compute(values []float64) Result {
	if len(values) == 0 {
		return Result{}
	}
	mean, _ := Mean(values)
	median, _ := Median(values)
	variance := meanSquaredDiff(values, mean)
	return Result{
		Count:    len(values),
		Mean:     mean,
		Median:   median,
		Modes:    Modes(values),
		Variance: variance,
		StdDev:   Sqrt(variance),
		Defined:  true,
	}
}

// Sum returns the sum of values, computed with compensated summation.
// If the sum overflows, the result is an infinity of the appropriate sign.
func Sum(values []float64) float64 {
	var k kahan
	for _, v := range values {
		k.add(v)
	}
	return k.sum
}

// kahan is a compensated running sum.
type kahan struct{ sum, c float64 }

func (k *kahan) add(v float64) {
	y := v - k.c
	t := k.sum + y
	if math.IsInf(t, 0) {
		k.c = 0 // the compensation of an overflowed sum is meaningless
	} else {
		k.c = (t - k.sum) - y
	}
	k.sum = t
}

// Mean returns the arithmetic mean of values.
// It reports ErrEmpty if values is empty.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	if sum := Sum(values); !math.IsInf(sum, 0) {
		return sum / float64(len(values)), nil
	}

	// The sum overflows, but the mean of finite values does not. Take a
	// running mean of the values scaled into [-1, 1] by a power of two.
	e := maxExp(values)
	var m float64
	for i, v := range values {
		m += (math.Ldexp(v, -e) - m) / float64(i+1)
	}
	return math.Ldexp(m, e), nil
}

// Median returns the median of values, which need not be sorted.
// If there is an odd number of values the median is the middle one in sorted
// order; otherwise it is the mean of the two middle values.
// It reports ErrEmpty if values is empty.
func Median(values []float64) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, ErrEmpty
	}
	sorted := msort.Sorted(values, func(a, b float64) bool { return a < b })
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid], nil
	}
	return midpoint(sorted[mid-1], sorted[mid]), nil
}

// midpoint returns the mean of lo <= hi without overflowing.
func midpoint(lo, hi float64) float64 {
	if (lo < 0) != (hi < 0) {
		return (lo + hi) / 2
	}
	return lo + (hi-lo)/2
}

// Modes returns the values occurring most frequently in values.  When
// several values share the highest frequency, all of them are returned, in
// the order in which each first appears in values. The result is empty if
// values is empty.
func Modes(values []float64) []float64 {
	// The index records the position of each distinct value in the order of
	// first occurrence, so that ties can be reported deterministically.
	index := make(map[float64]int)
	var distinct []float64
	var counts []int
	best := 0
	for _, v := range values {
		if v == 0 {
			v = 0 // fold -0 into +0
		}
		i, ok := index[v]
		if !ok {
			i = len(distinct)
			index[v] = i
			distinct = append(distinct, v)
			counts = append(counts, 0)
		}
		counts[i]++
		if counts[i] > best {
			best = counts[i]
		}
	}

	var modes []float64
	for i, v := range distinct {
		if counts[i] == best {
			modes = append(modes, v)
		}
	}
	return modes
}

// Variance returns the population variance of values, the mean of the
// squared deviations from the mean. A variance too large to represent is
// reported as +Inf.
// It reports ErrEmpty if values is empty.
func Variance(values []float64) (float64, error) {
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}
	return meanSquaredDiff(values, mean), nil
}

// StdDev returns the population standard deviation of values.
// It reports ErrEmpty if values is empty.
func StdDev(values []float64) (float64, error) {
	v, err := Variance(values)
	if err != nil {
		return 0, err
	}
	return Sqrt(v), nil
}

// meanSquaredDiff returns the mean of the squared deviations of values from
// mean. The deviations are scaled by a power of two so that squaring them
// cannot overflow; only the final rescaling can.
func meanSquaredDiff(values []float64, mean float64) float64 {
	e := maxExp(values)
	mu := math.Ldexp(mean, -e)
	var k kahan
	for _, v := range values {
		d := math.Ldexp(v, -e) - mu
		k.add(d * d)
	}
	return math.Ldexp(k.sum/float64(len(values)), 2*e)
}

// maxExp returns the smallest e such that |v| < 2**e for all values, or 0
// if all the values are zero.
func maxExp(values []float64) int {
	var e int
	for _, v := range values {
		if _, x := math.Frexp(v); x > e {
			e = x
		}
	}
	return e
}
