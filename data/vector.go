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

// Package data provides containers for batches of samples.
package data

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pafnuty-project/pafnuty/dist"
	"github.com/pafnuty-project/pafnuty/internal"
)

// Vector wraps a slice of float64 samples.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance with random elements
// sampled by the provided distribution. Returns an error in case of
// sampling failure.
func NewRandomVector(len int, d dist.Dist) (Vector, error) {
	vec, err := d.Sample(len)
	if err != nil {
		return nil, errors.Wrap(err, "error in vector sampling")
	}

	return NewVector(vec), nil
}

// Copy creates a new Vector with the same elements.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)
	return newVec
}

// Add adds vectors v and other. The result is returned in a new Vector.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, errors.Wrap(internal.MismatchedDims, "vector addition")
	}

	sum := make(Vector, len(v))
	copy(sum, v)
	floats.Add(sum, other)

	return sum, nil
}

// MulScalar multiplies vector v by a scalar x. The result is returned
// in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	scaled := v.Copy()
	floats.Scale(x, scaled)
	return scaled
}

// Dot calculates the inner product of vectors v and other.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, errors.Wrap(internal.MismatchedDims, "vector inner product")
	}

	return floats.Dot(v, other), nil
}

// Norm returns the Euclidean norm of the vector.
func (v Vector) Norm() float64 {
	return floats.Norm(v, 2)
}

// Mean returns the sample mean of the vector's elements.
func (v Vector) Mean() float64 {
	return stat.Mean(v, nil)
}

// Variance returns the unbiased sample variance of the vector's
// elements.
func (v Vector) Variance() float64 {
	return stat.Variance(v, nil)
}
