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

package rng

import (
	"github.com/pkg/errors"

	"github.com/pafnuty-project/pafnuty/internal"
)

// Source is a deterministic stream of pseudo-random integers together
// with a normalised view of the stream.
type Source interface {
	// Uint64 advances the stream and returns its next raw value.
	Uint64() uint64
	// Max returns the modulus of the generator. Raw values lie in [0, Max).
	Max() uint64
	// Uniform returns n values uniformly distributed on [lower, upper).
	// An error is returned when upper <= lower.
	Uniform(lower, upper float64, n int) ([]float64, error)
}

// uniform normalises n raw draws from s onto [lower, upper).
func uniform(s Source, lower, upper float64, n int) ([]float64, error) {
	if upper <= lower {
		return nil, errors.Wrap(internal.InvalidBounds, "uniform sampling")
	}

	out := make([]float64, n)
	max := float64(s.Max())
	for i := range out {
		out[i] = lower + (upper-lower)*(float64(s.Uint64())/max)
	}

	return out, nil
}

// OpenUnit returns a single draw from the open interval (0, 1). It is
// meant for call sites where a subsequent log or inverse-CDF transform
// must stay finite, which a draw of exactly 0 or 1 would break.
func OpenUnit(s Source) float64 {
	return (float64(s.Uint64()) + 0.5) / float64(s.Max())
}

// Split derives the i-th child seed from a parent seed with a SplitMix64
// style mixing function. Child seeds are valid for any generator in this
// package and streams started from distinct children do not overlap in
// practice, which makes Split the way to hand independent streams to
// parallel simulation chains.
func Split(seed uint64, i int) uint64 {
	z := seed + (uint64(i)+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31

	// fold into the strictest seed domain, (0, 2^31 - 1)
	return z%(gglModulus-2) + 1
}
