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

// Package disc provides sampling of points on a disc.
//
// Three strategies are available. Inverse transforms the radius through
// the inverse CDF and yields points uniform over the disc's area.
// Rejection draws candidates from the bounding square and keeps those
// inside the disc, which is also uniform at the cost of discarded
// draws. Polar draws the radius directly and clusters points near the
// origin; it is kept for comparing strategies, not for uniform
// coverage.
package disc
