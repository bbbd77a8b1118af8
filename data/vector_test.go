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

package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pafnuty-project/pafnuty/data"
	"github.com/pafnuty-project/pafnuty/dist"
)

func TestVector_Arithmetic(t *testing.T) {
	v := data.NewVector([]float64{1, 2, 3})
	w := data.NewVector([]float64{4, 5, 6})

	sum, err := v.Add(w)
	require.NoError(t, err)
	assert.Equal(t, data.NewVector([]float64{5, 7, 9}), sum)
	// operands stay untouched
	assert.Equal(t, data.NewVector([]float64{1, 2, 3}), v)

	dot, err := v.Dot(w)
	require.NoError(t, err)
	assert.Equal(t, 32.0, dot)

	scaled := v.MulScalar(2)
	assert.Equal(t, data.NewVector([]float64{2, 4, 6}), scaled)

	assert.InDelta(t, 5.0, data.NewVector([]float64{3, 4}).Norm(), 1e-12)
}

func TestVector_MismatchedDims(t *testing.T) {
	v := data.NewVector([]float64{1, 2, 3})
	w := data.NewVector([]float64{1, 2})

	_, err := v.Add(w)
	assert.Error(t, err)
	_, err = v.Dot(w)
	assert.Error(t, err)
}

func TestVector_Statistics(t *testing.T) {
	v := data.NewVector([]float64{1, 2, 3, 4, 5})

	assert.InDelta(t, 3, v.Mean(), 1e-12)
	assert.InDelta(t, 2.5, v.Variance(), 1e-12)
}

func TestNewRandomVector(t *testing.T) {
	d, err := dist.NewNormal(0, 1)
	require.NoError(t, err)

	v, err := data.NewRandomVector(10000, d)
	require.NoError(t, err)
	require.Len(t, []float64(v), 10000)

	assert.True(t, v.Mean() > -0.05 && v.Mean() < 0.05,
		"mean value of the sampled vector is off")
	assert.True(t, v.Variance() > 0.9 && v.Variance() < 1.1,
		"variance of the sampled vector is off")
}
