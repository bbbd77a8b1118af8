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

// Dist is a univariate probability distribution.
type Dist interface {
	// Name returns the name of the distribution family.
	Name() string
	// PDF returns the probability density at a point x.
	PDF(x float64) float64
	// LogPDF returns the log of the probability density at a point x.
	// It is computed directly rather than as log(PDF(x)) so that it
	// stays finite deep in the tails.
	LogPDF(x float64) float64
	// CDF returns the cumulative probability up to a point x.
	CDF(x float64) float64
	// InvCDF returns the point below which a fraction p of the
	// probability mass lies. An error is returned when p lies outside
	// the domain of the inverse.
	InvCDF(p float64) (float64, error)
	// GradPDF returns the derivative of the density at a point x.
	GradPDF(x float64) float64
	// Sample draws n values from the distribution using the source the
	// distribution was constructed with.
	Sample(n int) ([]float64, error)
}
