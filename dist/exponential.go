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

// Exponential is the exponential distribution with rate Lambda,
// supported on [0, inf).
type Exponential struct {
	Lambda float64

	src rng.Source
}

// NewExponential returns an instance of the Exponential distribution,
// sampling from an LFG generator with the default seed.
func NewExponential(lambda float64) (*Exponential, error) {
	return NewExponentialWithSource(lambda, rng.NewLFG())
}

// NewExponentialWithSource returns an instance of the Exponential
// distribution that draws its samples from the given source. An error
// is returned when lambda is not strictly positive.
func NewExponentialWithSource(lambda float64, src rng.Source) (*Exponential, error) {
	if lambda <= 0 {
		return nil, errors.Wrap(internal.InvalidParam, "exponential lambda")
	}

	return &Exponential{Lambda: lambda, src: src}, nil
}

// Name returns the name of the distribution family.
func (d *Exponential) Name() string {
	return "Exponential"
}

// PDF returns the probability density at a point x.
func (d *Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.Lambda * math.Exp(-d.Lambda*x)
}

// LogPDF returns the log of the probability density at a point x.
func (d *Exponential) LogPDF(x float64) float64 {
	if x < 0 {
		return math.Inf(-1)
	}
	return math.Log(d.Lambda) - d.Lambda*x
}

// CDF returns the cumulative probability up to a point x.
func (d *Exponential) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return 1 - math.Exp(-d.Lambda*x)
}

// InvCDF returns the point below which a fraction p of the probability
// mass lies. An error is returned when p lies outside [0, 1).
func (d *Exponential) InvCDF(p float64) (float64, error) {
	if p < 0 || p >= 1 {
		return 0, errors.Wrap(internal.InvalidProbability, "exponential inverse CDF")
	}

	return -math.Log1p(-p) / d.Lambda, nil
}

// GradPDF returns the derivative of the density at a point x.
func (d *Exponential) GradPDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return -d.Lambda * d.Lambda * math.Exp(-d.Lambda*x)
}

// Sample draws n values from the distribution by inverse-transform
// sampling over the distribution's source.
func (d *Exponential) Sample(n int) ([]float64, error) {
	u, err := d.src.Uniform(0, 1, n)
	if err != nil {
		return nil, errors.Wrap(err, "error in exponential sampling")
	}

	out := make([]float64, n)
	for i, p := range u {
		out[i], err = d.InvCDF(p)
		if err != nil {
			return nil, errors.Wrap(err, "error in exponential sampling")
		}
	}

	return out, nil
}
