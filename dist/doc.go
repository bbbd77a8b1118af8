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

// Package dist provides univariate probability distributions.
//
// Package dist provides the Dist interface along with different
// implementations of this interface. Each distribution exposes its
// density, log density, cumulative distribution, inverse cumulative
// distribution and density gradient in closed form, and draws samples
// by inverse-transform sampling over a rng.Source, so that every draw
// is reproducible from the source's seed.
package dist
