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
	"sync"

	"github.com/pkg/errors"

	"github.com/pafnuty-project/pafnuty/dist"
	"github.com/pafnuty-project/pafnuty/internal"
	"github.com/pafnuty-project/pafnuty/rng"
)

// Sampler is implemented by the MCMC kernels in this package. The aux
// distribution parameterises the kernel: HMC draws its momenta from it,
// RandomWalk uses it as the proposal.
type Sampler interface {
	// SampleContext runs the chain against a target distribution until
	// its configured number of epochs is reached or the context is
	// cancelled.
	SampleContext(ctx context.Context, target, aux dist.Dist) (*Trace, error)

	withSource(src rng.Source) Sampler
}

// DistFactory builds a distribution bound to the given source. RunChains
// uses factories rather than shared distributions so that no chain ever
// draws from another chain's stream.
type DistFactory func(src rng.Source) (dist.Dist, error)

// RunChains runs the given number of independent chains of the sampler
// in parallel and returns one trace per chain. Every chain receives its
// own generator for the kernel, the target and the aux distribution,
// seeded through rng.Split of the parent seed, so runs are reproducible
// and chains never share a stream. The first error of any chain is
// returned; cancelling the context stops all chains.
func RunChains(ctx context.Context, s Sampler, chains int, seed uint64,
	newTarget, newAux DistFactory) ([]*Trace, error) {
	if chains < 1 {
		return nil, errors.Wrap(internal.InvalidParam, "chain count")
	}

	traces := make([]*Trace, chains)
	errs := make([]error, chains)
	var wg sync.WaitGroup

	for i := 0; i < chains; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			traces[i], errs[i] = runChain(ctx, s, i, seed, newTarget, newAux)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "chain %d", i)
		}
	}

	return traces, nil
}

// runChain derives the chain's three streams and runs the kernel once.
func runChain(ctx context.Context, s Sampler, chain int, seed uint64,
	newTarget, newAux DistFactory) (*Trace, error) {
	kernelSrc, err := rng.NewLFGSeeded(rng.Split(seed, 3*chain))
	if err != nil {
		return nil, err
	}
	targetSrc, err := rng.NewLFGSeeded(rng.Split(seed, 3*chain+1))
	if err != nil {
		return nil, err
	}
	auxSrc, err := rng.NewLFGSeeded(rng.Split(seed, 3*chain+2))
	if err != nil {
		return nil, err
	}

	target, err := newTarget(targetSrc)
	if err != nil {
		return nil, errors.Wrap(err, "building the target distribution")
	}
	aux, err := newAux(auxSrc)
	if err != nil {
		return nil, errors.Wrap(err, "building the aux distribution")
	}

	return s.withSource(kernelSrc).SampleContext(ctx, target, aux)
}
