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

const (
	gglModulus    uint64 = 1<<31 - 1
	gglMultiplier uint64 = 16807
	gglIncrement  uint64 = 0
)

// DefaultSeed seeds every generator in this package that is not given an
// explicit seed.
const DefaultSeed uint64 = 300416

// GGL is the Lewis, Goodman and Miller multiplicative linear congruential
// generator, x' = (a*x + c) mod m with a = 16807, c = 0 and m = 2^31 - 1.
type GGL struct {
	m, a, c uint64
	x       uint64
}

// NewGGL returns an instance of the GGL generator seeded with DefaultSeed.
func NewGGL() *GGL {
	g, _ := NewGGLSeeded(DefaultSeed)
	return g
}

// NewGGLSeeded returns an instance of the GGL generator with the given
// seed. Seed 0 is rejected since it is an absorbing state of the
// recurrence, as is any seed outside [1, m).
func NewGGLSeeded(seed uint64) (*GGL, error) {
	if seed == 0 || seed >= gglModulus {
		return nil, errors.Wrap(internal.InvalidSeed, "GGL")
	}

	return &GGL{
		m: gglModulus,
		a: gglMultiplier,
		c: gglIncrement,
		x: seed,
	}, nil
}

// Uint64 advances the recurrence and returns its next value.
func (g *GGL) Uint64() uint64 {
	g.x = (g.a*g.x + g.c) % g.m
	return g.x
}

// Max returns the modulus of the generator.
func (g *GGL) Max() uint64 {
	return g.m
}

// Uniform returns n values uniformly distributed on [lower, upper).
func (g *GGL) Uniform(lower, upper float64, n int) ([]float64, error) {
	return uniform(g, lower, upper, n)
}
