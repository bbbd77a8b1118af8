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
	lfgModulus uint64 = 1 << 32
	lfgLagA           = 24
	lfgLagB           = 55
)

// LFG is a subtractive lagged Fibonacci generator with the RAN3 settings,
// x_i = (x_{i-55} - x_{i-24}) mod 2^32. Its seed table is bootstrapped
// from a GGL generator when not supplied explicitly.
type LFG struct {
	state [lfgLagB]uint64
	pos   int
}

// NewLFG returns an instance of the LFG generator, its seed table
// bootstrapped from a GGL generator seeded with DefaultSeed.
func NewLFG() *LFG {
	l, _ := NewLFGSeeded(DefaultSeed)
	return l
}

// NewLFGSeeded returns an instance of the LFG generator, its seed table
// bootstrapped from a GGL generator with the given seed.
func NewLFGSeeded(seed uint64) (*LFG, error) {
	g, err := NewGGLSeeded(seed)
	if err != nil {
		return nil, err
	}

	table := make([]uint64, lfgLagB)
	for i := range table {
		table[i] = g.Uint64()
	}

	return NewLFGFromTable(table)
}

// NewLFGFromTable returns an instance of the LFG generator with an
// explicit seed table. The table must contain at least 55 elements;
// the last 55 form the initial state.
func NewLFGFromTable(seeds []uint64) (*LFG, error) {
	if len(seeds) < lfgLagB {
		return nil, errors.Wrap(internal.InvalidSeedTable, "LFG")
	}

	l := &LFG{}
	for i, s := range seeds[len(seeds)-lfgLagB:] {
		l.state[i] = s % lfgModulus
	}

	return l, nil
}

// Uint64 advances the recurrence and returns its next value.
func (l *LFG) Uint64() uint64 {
	// state[pos] holds x_{i-55}, the slot lagA positions behind the
	// write head holds x_{i-24}
	next := (l.state[l.pos] - l.state[(l.pos+lfgLagB-lfgLagA)%lfgLagB]) % lfgModulus
	l.state[l.pos] = next
	l.pos = (l.pos + 1) % lfgLagB

	return next
}

// Max returns the modulus of the generator.
func (l *LFG) Max() uint64 {
	return lfgModulus
}

// Uniform returns n values uniformly distributed on [lower, upper).
func (l *LFG) Uniform(lower, upper float64, n int) ([]float64, error) {
	return uniform(l, lower, upper, n)
}
