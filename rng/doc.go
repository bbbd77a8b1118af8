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

// Package rng provides pseudo-random number generator cores for the
// simulation algorithms in this module.
//
// Package rng provides the Source interface along with different
// implementations of this interface: a multiplicative linear congruential
// generator (GGL), a subtractive lagged Fibonacci generator with the RAN3
// settings (LFG), and a keyed deterministic stream built on the salsa20
// stream cipher (Salsa).
//
// Every Source is deterministic given its seed: the same seed and the same
// call sequence reproduce the same stream. Sources are not safe for
// concurrent use; parallel consumers should derive an independent seed per
// goroutine with Split and construct their own Source.
package rng
