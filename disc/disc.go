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

package disc

import (
	"math"

	"github.com/pkg/errors"

	"github.com/pafnuty-project/pafnuty/internal"
	"github.com/pafnuty-project/pafnuty/rng"
)

// Strategy selects how points on the disc are drawn.
type Strategy string

const (
	// Inverse draws the angle uniformly and the radius through the
	// inverse CDF of the radial distribution, r*sqrt(u). No draws are
	// rejected and the points cover the disc uniformly.
	Inverse Strategy = "inverse"
	// Polar draws the radius directly from U[0, 1). The resulting
	// points cluster near the origin.
	Polar Strategy = "polar"
	// Rejection draws candidates from the bounding square and keeps
	// those that fall inside the disc.
	Rejection Strategy = "rejection"
)

// Sampler draws points on a disc of the given radius centred on the
// origin.
type Sampler struct {
	r        float64
	strategy Strategy

	src rng.Source
}

// NewSampler returns an instance of the disc Sampler, drawing from an
// LFG generator with the default seed.
func NewSampler(r float64, strategy Strategy) (*Sampler, error) {
	return NewSamplerWithSource(r, strategy, rng.NewLFG())
}

// NewSamplerWithSource returns an instance of the disc Sampler over the
// given source. An error is returned when the radius is not strictly
// positive or the strategy is unknown.
func NewSamplerWithSource(r float64, strategy Strategy, src rng.Source) (*Sampler, error) {
	if r <= 0 {
		return nil, errors.Wrap(internal.InvalidParam, "disc radius")
	}
	if strategy != Inverse && strategy != Polar && strategy != Rejection {
		return nil, errors.Wrap(internal.InvalidStrategy, string(strategy))
	}

	return &Sampler{r: r, strategy: strategy, src: src}, nil
}

// Sample returns the Euclidean coordinates of n points on the disc,
// drawn with the sampler's strategy.
func (d *Sampler) Sample(n int) ([]float64, []float64, error) {
	if n <= 0 {
		return nil, nil, errors.Wrap(internal.InvalidParam, "sample count")
	}

	switch d.strategy {
	case Polar:
		return d.polar(n)
	case Rejection:
		return d.rejection(n)
	default:
		return d.inverse(n)
	}
}

// inverse performs disc sampling using the inverse CDF strategy. The
// CDF of the radial coordinate of a uniform point is (rho/r)^2, so
// rho = r*sqrt(u) reproduces it exactly and no candidate is wasted.
func (d *Sampler) inverse(n int) ([]float64, []float64, error) {
	theta, err := d.src.Uniform(0, 2*math.Pi, n)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error in disc sampling")
	}
	u, err := d.src.Uniform(0, 1, n)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error in disc sampling")
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		rho := d.r * math.Sqrt(u[i])
		xs[i] = rho * math.Cos(theta[i])
		ys[i] = rho * math.Sin(theta[i])
	}

	return xs, ys, nil
}

// polar performs disc sampling in polar coordinates with the radius
// drawn directly.
func (d *Sampler) polar(n int) ([]float64, []float64, error) {
	rho, err := d.src.Uniform(0, 1, n)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error in disc sampling")
	}
	theta, err := d.src.Uniform(0, 1, n)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error in disc sampling")
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = d.r * rho[i] * math.Cos(2*math.Pi*theta[i])
		ys[i] = d.r * rho[i] * math.Sin(2*math.Pi*theta[i])
	}

	return xs, ys, nil
}

// rejection performs disc sampling by drawing candidate coordinates
// from the bounding square and keeping those inside the disc, topping
// up until n points are accepted.
func (d *Sampler) rejection(n int) ([]float64, []float64, error) {
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	rSquare := d.r * d.r

	for len(xs) < n {
		need := n - len(xs)
		cand, err := d.src.Uniform(-d.r, d.r, 2*need)
		if err != nil {
			return nil, nil, errors.Wrap(err, "error in disc sampling")
		}

		for i := 0; i < need; i++ {
			x, y := cand[2*i], cand[2*i+1]
			if x*x+y*y <= rSquare {
				xs = append(xs, x)
				ys = append(ys, y)
			}
		}
	}

	return xs, ys, nil
}
