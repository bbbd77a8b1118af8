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

// Default parameters of the HMC kernel.
const (
	DefaultPathLen  = 1.0
	DefaultStepSize = 0.25
	DefaultEpochs   = 1000
)

// HMC is a Hamiltonian Monte Carlo sampler. Each epoch it draws a
// momentum, integrates the trajectory with the leapfrog scheme for
// pathLen/stepSize steps, flips the momentum to keep the proposal
// reversible and applies the Metropolis acceptance rule on the joint
// negative log probability of position and momentum.
type HMC struct {
	pathLen  float64
	stepSize float64
	epochs   int

	src rng.Source
}

// NewHMC returns an instance of the HMC sampler, drawing its acceptance
// events from an LFG generator with the default seed.
func NewHMC(pathLen, stepSize float64, epochs int) (*HMC, error) {
	return NewHMCWithSource(pathLen, stepSize, epochs, rng.NewLFG())
}

// NewHMCWithSource returns an instance of the HMC sampler that draws
// its acceptance events from the given source.
func NewHMCWithSource(pathLen, stepSize float64, epochs int, src rng.Source) (*HMC, error) {
	if stepSize <= 0 || pathLen < stepSize {
		return nil, errors.Wrap(internal.InvalidParam, "HMC step size")
	}
	if epochs <= 0 {
		return nil, errors.Wrap(internal.InvalidParam, "HMC epochs")
	}

	return &HMC{
		pathLen:  pathLen,
		stepSize: stepSize,
		epochs:   epochs,
		src:      src,
	}, nil
}

// Sample runs the chain against a target distribution, drawing momenta
// from the momentum distribution, and returns its trace.
func (h *HMC) Sample(target, momentum dist.Dist) (*Trace, error) {
	return h.SampleContext(context.Background(), target, momentum)
}

// SampleContext runs the chain like Sample, stopping with the context's
// error when the context is cancelled between epochs.
func (h *HMC) SampleContext(ctx context.Context, target, momentum dist.Dist) (*Trace, error) {
	steps := int(h.pathLen / h.stepSize)

	first, err := momentum.Sample(1)
	if err != nil {
		return nil, errors.Wrap(err, "error drawing the initial position")
	}

	samples := make([]float64, 0, h.epochs+1)
	samples = append(samples, first[0])
	accepted := 0

	for e := 0; e < h.epochs; e++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		q0 := samples[len(samples)-1]
		q1 := q0
		pDraw, err := momentum.Sample(1)
		if err != nil {
			return nil, errors.Wrap(err, "error drawing momentum")
		}
		p0 := pDraw[0]
		p1 := p0
		grad := target.GradPDF(q0)

		// leapfrog integration
		for s := 0; s < steps; s++ {
			p1 += h.stepSize * grad / 2
			q1 += h.stepSize * p1
			p1 += h.stepSize * grad / 2
		}
		// flip momentum for reversibility
		p1 = -p1

		// Metropolis acceptance on the joint negative log probability
		targetDiff := -target.LogPDF(q0) + target.LogPDF(q1)
		adjustment := -momentum.LogPDF(p1) + momentum.LogPDF(p0)
		acceptance := targetDiff + adjustment

		if math.Log(rng.OpenUnit(h.src)) <= acceptance {
			samples = append(samples, q1)
			accepted++
		} else {
			samples = append(samples, q0)
		}
	}

	return &Trace{samples: samples, accepted: accepted, epochs: h.epochs}, nil
}

// withSource returns a copy of the sampler bound to another source.
func (h *HMC) withSource(src rng.Source) Sampler {
	c := *h
	c.src = src
	return &c
}
