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

package dist

import (
	"math"

	"github.com/pkg/errors"

	"github.com/pafnuty-project/pafnuty/internal"
	"github.com/pafnuty-project/pafnuty/rng"
)

// Uniform is the continuous uniform distribution on [A, B).
type Uniform struct {
	A float64
	B float64

	src rng.Source
}

// NewUniform returns an instance of the Uniform distribution, sampling
// from an LFG generator with the default seed.
func NewUniform(a, b float64) (*Uniform, error) {
	return NewUniformWithSource(a, b, rng.NewLFG())
}

// NewUniformWithSource returns an instance of the Uniform distribution
// that draws its samples from the given source. An error is returned
// when b <= a.
func NewUniformWithSource(a, b float64, src rng.Source) (*Uniform, error) {
	if b <= a {
		return nil, errors.Wrap(internal.InvalidBounds, "uniform distribution")
	}

	return &Uniform{A: a, B: b, src: src}, nil
}

// Name returns the name of the distribution family.
func (d *Uniform) Name() string {
	return "Uniform"
}

// PDF returns the probability density at a point x.
func (d *Uniform) PDF(x float64) float64 {
	if x < d.A || x >= d.B {
		return 0
	}
	return 1 / (d.B - d.A)
}

// LogPDF returns the log of the probability density at a point x.
func (d *Uniform) LogPDF(x float64) float64 {
	if x < d.A || x >= d.B {
		return math.Inf(-1)
	}
	return -math.Log(d.B - d.A)
}

// CDF returns the cumulative probability up to a point x.
func (d *Uniform) CDF(x float64) float64 {
	switch {
	case x < d.A:
		return 0
	case x >= d.B:
		return 1
	default:
		return (x - d.A) / (d.B - d.A)
	}
}

// InvCDF returns the point below which a fraction p of the probability
// mass lies. An error is returned when p lies outside [0, 1].
func (d *Uniform) InvCDF(p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, errors.Wrap(internal.InvalidProbability, "uniform inverse CDF")
	}

	return d.A + p*(d.B-d.A), nil
}

// GradPDF returns the derivative of the density at a point x. The
// density is flat, so the gradient is 0 everywhere it is defined.
func (d *Uniform) GradPDF(x float64) float64 {
	return 0
}

// Sample draws n values from the distribution.
func (d *Uniform) Sample(n int) ([]float64, error) {
	out, err := d.src.Uniform(d.A, d.B, n)
	if err != nil {
		return nil, errors.Wrap(err, "error in uniform sampling")
	}

	return out, nil
}
