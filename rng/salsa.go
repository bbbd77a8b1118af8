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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

const salsaMax uint64 = 1 << 53

// Salsa is a deterministic keyed stream source built on the salsa20
// stream cipher. The 32-byte key determines the whole stream, which makes
// Salsa suitable for reproducible bulk streams of high statistical
// quality. Raw values are truncated to 53 bits so that both the values
// and the modulus are exactly representable as float64, keeping
// normalised draws strictly below the upper bound.
type Salsa struct {
	key     [32]byte
	counter uint64
	buf     [64]byte
	off     int
}

// NewSalsa returns an instance of the Salsa source for the given key.
func NewSalsa(key *[32]byte) *Salsa {
	s := &Salsa{key: *key}
	s.off = len(s.buf)
	return s
}

// refill encrypts a zero block with the next nonce of the keystream.
func (s *Salsa) refill() {
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], s.counter)
	s.counter++

	var in [64]byte
	salsa20.XORKeyStream(s.buf[:], in[:], nonce[:], &s.key)
	s.off = 0
}

// Uint64 returns the next 53 bits of the keystream.
func (s *Salsa) Uint64() uint64 {
	if s.off == len(s.buf) {
		s.refill()
	}

	v := binary.LittleEndian.Uint64(s.buf[s.off:])
	s.off += 8

	return v >> 11
}

// Max returns the modulus of the source.
func (s *Salsa) Max() uint64 {
	return salsaMax
}

// Uniform returns n values uniformly distributed on [lower, upper).
func (s *Salsa) Uniform(lower, upper float64, n int) ([]float64, error) {
	return uniform(s, lower, upper, n)
}
