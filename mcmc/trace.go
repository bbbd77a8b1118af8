/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package mcmc

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/pafnuty-project/pafnuty/internal"
)

// Trace is the output of a completed MCMC run: the chain's path through
// the sampling space plus acceptance bookkeeping. A Trace is only ever
// produced by a finished run, so its diagnostics are always backed by
// samples.
type Trace struct {
	samples  []float64
	accepted int
	epochs   int
}

// Samples returns the chain's path. The first element is the initial
// position, followed by one element per epoch.
func (t *Trace) Samples() []float64 {
	return t.samples
}

// Len returns the number of recorded positions.
func (t *Trace) Len() int {
	return len(t.samples)
}

// Mean returns the sample mean of the trace.
func (t *Trace) Mean() float64 {
	return stat.Mean(t.samples, nil)
}

// Variance returns the unbiased sample variance of the trace.
func (t *Trace) Variance() float64 {
	return stat.Variance(t.samples, nil)
}

// Quantile returns the empirical p-quantile of the trace. An error is
// returned when p lies outside [0, 1].
func (t *Trace) Quantile(p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, errors.Wrap(internal.InvalidProbability, "trace quantile")
	}

	sorted := make([]float64, len(t.samples))
	copy(sorted, t.samples)
	sort.Float64s(sorted)

	return stat.Quantile(p, stat.Empirical, sorted, nil), nil
}

// AcceptanceRate returns the fraction of epochs whose proposal was
// accepted.
func (t *Trace) AcceptanceRate() float64 {
	return float64(t.accepted) / float64(t.epochs)
}

// ESS estimates the effective sample size of the trace from its
// autocorrelation, truncated with Geyer's initial positive sequence:
// consecutive pairs of autocorrelations are summed until a pair turns
// non-positive.
func (t *Trace) ESS() float64 {
	n := len(t.samples)
	if n < 2 {
		return float64(n)
	}

	mean := stat.Mean(t.samples, nil)
	c0 := autocovariance(t.samples, mean, 0)
	if c0 <= 0 {
		// constant trace, every sample carries the same information
		return float64(n)
	}

	tau := 1.0
	for k := 1; k+1 < n; k += 2 {
		pair := autocovariance(t.samples, mean, k) + autocovariance(t.samples, mean, k+1)
		if pair <= 0 {
			break
		}
		tau += 2 * pair / c0
	}

	return float64(n) / tau
}

// autocovariance returns the lag-k autocovariance around the given mean,
// normalised by the series length.
func autocovariance(xs []float64, mean float64, k int) float64 {
	sum := 0.0
	for i := 0; i+k < len(xs); i++ {
		sum += (xs[i] - mean) * (xs[i+k] - mean)
	}
	return sum / float64(len(xs))
}
