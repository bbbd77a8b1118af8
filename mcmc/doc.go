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

// Package mcmc provides Markov chain Monte Carlo samplers.
//
// Package mcmc provides two kernels, a Hamiltonian Monte Carlo sampler
// and a random walk Metropolis-Hastings sampler, both targeting any
// distribution from the dist package. A completed run yields a Trace,
// which carries the chain's path through the sampling space together
// with summary diagnostics. RunChains runs several independent chains
// in parallel, each on its own pseudo-random stream.
package mcmc
