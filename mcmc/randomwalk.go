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
	"context"
	"math"

	"github.com/pkg/errors"

	"github.com/pafnuty-project/pafnuty/dist"
	"github.com/pafnuty-project/pafnuty/internal"
	"github.com/pafnuty-project/pafnuty/rng"
)

// RandomWalk is a Metropolis-Hastings sampler with a symmetric proposal.
// Each epoch it perturbs the current position with a draw from the
// proposal distribution and applies the Metropolis acceptance rule on
// the target's log probability.
type RandomWalk struct {
	epochs int

	src rng.Source
}

// NewRandomWalk returns an instance of the RandomWalk sampler, drawing
// its acceptance events from an LFG generator with the default seed.
func NewRandomWalk(epochs int) (*RandomWalk, error) {
	return NewRandomWalkWithSource(epochs, rng.NewLFG())
}

// NewRandomWalkWithSource returns an instance of the RandomWalk sampler
// that draws its acceptance events from the given source.
func NewRandomWalkWithSource(epochs int, src rng.Source) (*RandomWalk, error) {
	if epochs <= 0 {
		return nil, errors.Wrap(internal.InvalidParam, "random walk epochs")
	}

	return &RandomWalk{epochs: epochs, src: src}, nil
}

// Sample runs the chain against a target distribution and returns its
// trace. The proposal distribution produces the walk's increments and
// must be symmetric around 0 for the acceptance rule to hold; it also
// provides the chain's initial position.
func (r *RandomWalk) Sample(target, proposal dist.Dist) (*Trace, error) {
	return r.SampleContext(context.Background(), target, proposal)
}

// SampleContext runs the chain like Sample, stopping with the context's
// error when the context is cancelled between epochs.
func (r *RandomWalk) SampleContext(ctx context.Context, target, proposal dist.Dist) (*Trace, error) {
	first, err := proposal.Sample(1)
	if err != nil {
		return nil, errors.Wrap(err, "error drawing the initial position")
	}

	samples := make([]float64, 0, r.epochs+1)
	samples = append(samples, first[0])
	accepted := 0

	for e := 0; e < r.epochs; e++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		q0 := samples[len(samples)-1]
		step, err := proposal.Sample(1)
		if err != nil {
			return nil, errors.Wrap(err, "error drawing a proposal step")
		}
		q1 := q0 + step[0]

		acceptance := target.LogPDF(q1) - target.LogPDF(q0)
		if math.Log(rng.OpenUnit(r.src)) <= acceptance {
			samples = append(samples, q1)
			accepted++
		} else {
			samples = append(samples, q0)
		}
	}

	return &Trace{samples: samples, accepted: accepted, epochs: r.epochs}, nil
}

// withSource returns a copy of the sampler bound to another source.
func (r *RandomWalk) withSource(src rng.Source) Sampler {
	c := *r
	c.src = src
	return &c
}
