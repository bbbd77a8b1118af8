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

package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pafnuty-project/pafnuty/dist"
)

// paramBounds holds the acceptance window for the statistics of a batch
// of samples.
type paramBounds struct {
	meanLow, meanHigh float64
	varLow, varHigh   float64
}

// testSampler draws 10000 samples and checks that their mean and
// variance fall inside the expected window.
func testSampler(t *testing.T, d dist.Dist, expect paramBounds) {
	vec, err := d.Sample(10000)
	require.NoError(t, err)
	require.Len(t, vec, 10000)

	me := mean(vec)
	v := variance(vec)
	assert.True(t, me > expect.meanLow, "mean value of the distribution is too small")
	assert.True(t, me < expect.meanHigh, "mean value of the distribution is too big")
	assert.True(t, v > expect.varLow, "variance of the distribution is too small")
	assert.True(t, v < expect.varHigh, "variance of the distribution is too big")
}

func mean(vec []float64) float64 {
	sum := 0.0
	for _, x := range vec {
		sum += x
	}
	return sum / float64(len(vec))
}

func variance(vec []float64) float64 {
	me := mean(vec)
	sum := 0.0
	for _, x := range vec {
		sum += (x - me) * (x - me)
	}
	return sum / float64(len(vec))
}

func TestNormal_Sample(t *testing.T) {
	var tests = []struct {
		name   string
		mu     float64
		sigma  float64
		expect paramBounds
	}{
		{
			name:  "standard",
			mu:    0,
			sigma: 1,
			expect: paramBounds{
				meanLow:  -0.05,
				meanHigh: 0.05,
				varLow:   0.9,
				varHigh:  1.1,
			},
		},
		{
			name:  "sigma 10",
			mu:    0,
			sigma: 10,
			expect: paramBounds{
				meanLow:  -0.5,
				meanHigh: 0.5,
				varLow:   90,
				varHigh:  110,
			},
		},
		{
			name:  "shifted",
			mu:    5,
			sigma: 2,
			expect: paramBounds{
				meanLow:  4.9,
				meanHigh: 5.1,
				varLow:   3.6,
				varHigh:  4.4,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := dist.NewNormal(test.mu, test.sigma)
			require.NoError(t, err)
			testSampler(t, d, test.expect)
		})
	}
}

func TestNormal_PDF(t *testing.T) {
	d, err := dist.NewNormal(0, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0.3989422804014327, d.PDF(0), 1e-12)
	assert.InDelta(t, 0.24197072451914337, d.PDF(1), 1e-12)
	assert.InDelta(t, d.PDF(-1.3), d.PDF(1.3), 1e-15, "density should be symmetric")
}

func TestNormal_CDF(t *testing.T) {
	d, err := dist.NewNormal(0, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, d.CDF(0), 1e-12)
	assert.InDelta(t, 0.975, d.CDF(1.959963984540054), 1e-9)
	assert.InDelta(t, 0.841344746068543, d.CDF(1), 1e-12)
}

func TestNormal_InvCDF(t *testing.T) {
	d, err := dist.NewNormal(2, 3)
	require.NoError(t, err)

	x, err := d.InvCDF(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2, x, 1e-12)

	// the inverse must undo the CDF
	for _, p := range []float64{0.05, 0.3, 0.7, 0.99} {
		x, err := d.InvCDF(p)
		require.NoError(t, err)
		assert.InDelta(t, p, d.CDF(x), 1e-9)
	}

	for _, p := range []float64{0, 1, -0.1, 1.1} {
		_, err := d.InvCDF(p)
		assert.Error(t, err)
	}
}

func TestNormal_LogPDF(t *testing.T) {
	d, err := dist.NewNormal(0, 1)
	require.NoError(t, err)

	// stays finite deep in the tail where PDF underflows
	assert.False(t, d.LogPDF(-40) == d.LogPDF(-41))
	assert.InDelta(t, -800.9189385332046, d.LogPDF(40), 1e-9)
}

func TestNormal_GradPDF(t *testing.T) {
	d, err := dist.NewNormal(0, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0, d.GradPDF(0), 1e-15)
	assert.True(t, d.GradPDF(1) < 0, "density should decrease to the right of the mean")
	assert.True(t, d.GradPDF(-1) > 0, "density should increase to the left of the mean")
	assert.InDelta(t, -d.PDF(1), d.GradPDF(1), 1e-12)
}

func TestNormal_InvalidSigma(t *testing.T) {
	_, err := dist.NewNormal(0, 0)
	assert.Error(t, err)
	_, err = dist.NewNormal(0, -1)
	assert.Error(t, err)
}
