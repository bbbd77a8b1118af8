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

var logSqrtTwoPi = 0.5 * math.Log(2*math.Pi)

// Normal is the normal (Gaussian) distribution with mean Mu and standard
// deviation Sigma.
type Normal struct {
	Mu    float64
	Sigma float64

	src rng.Source
}

// NewNormal returns an instance of the Normal distribution, sampling
// from an LFG generator with the default seed.
func NewNormal(mu, sigma float64) (*Normal, error) {
	return NewNormalWithSource(mu, sigma, rng.NewLFG())
}

// NewNormalWithSource returns an instance of the Normal distribution
// that draws its samples from the given source. An error is returned
// when sigma is not strictly positive.
func NewNormalWithSource(mu, sigma float64, src rng.Source) (*Normal, error) {
	if sigma <= 0 {
		return nil, errors.Wrap(internal.InvalidParam, "normal sigma")
	}

	return &Normal{Mu: mu, Sigma: sigma, src: src}, nil
}

// Name returns the name of the distribution family.
func (d *Normal) Name() string {
	return "Normal"
}

// PDF returns the probability density at a point x.
func (d *Normal) PDF(x float64) float64 {
	z := (x - d.Mu) / d.Sigma
	return math.Exp(-z*z/2) / (d.Sigma * math.Sqrt(2*math.Pi))
}

// LogPDF returns the log of the probability density at a point x.
func (d *Normal) LogPDF(x float64) float64 {
	z := (x - d.Mu) / d.Sigma
	return -z*z/2 - math.Log(d.Sigma) - logSqrtTwoPi
}

// CDF returns the cumulative probability up to a point x.
func (d *Normal) CDF(x float64) float64 {
	return (1 + math.Erf((x-d.Mu)/(d.Sigma*math.Sqrt2))) / 2
}

// InvCDF returns the point below which a fraction p of the probability
// mass lies. An error is returned when p lies outside (0, 1).
func (d *Normal) InvCDF(p float64) (float64, error) {
	if p <= 0 || p >= 1 {
		return 0, errors.Wrap(internal.InvalidProbability, "normal inverse CDF")
	}

	return d.Mu + d.Sigma*math.Sqrt2*math.Erfinv(2*p-1), nil
}

// GradPDF returns the derivative of the density at a point x.
func (d *Normal) GradPDF(x float64) float64 {
	return -(x - d.Mu) / (d.Sigma * d.Sigma) * d.PDF(x)
}

// Sample draws n values from the distribution by inverse-transform
// sampling over the distribution's source.
func (d *Normal) Sample(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		x, err := d.InvCDF(rng.OpenUnit(d.src))
		if err != nil {
			return nil, errors.Wrap(err, "error in normal sampling")
		}
		out[i] = x
	}

	return out, nil
}
