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

package internal

import (
	"errors"
	"fmt"
)

var invalidStr = "is not valid"

var InvalidBounds = errors.New("upper bound must be strictly greater than the lower bound")
var InvalidStrategy = errors.New("invalid sampling strategy, please select one of either `rejection`, `polar`, or `inverse`")
var InvalidSeed = errors.New(fmt.Sprintf("generator seed %s", invalidStr))
var InvalidSeedTable = errors.New("initial seeds must contain at least 55 elements")
var InvalidParam = errors.New(fmt.Sprintf("parameter %s", invalidStr))
var InvalidProbability = errors.New(fmt.Sprintf("probability argument %s", invalidStr))
var MismatchedDims = errors.New("vectors must have equal dimensions")
