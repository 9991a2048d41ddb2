// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package stats estimates the strength difference between two computer
// players from the results of the games played between them.
package stats

import "math"

// Elo returns the likely elo difference of a player given its number of
// wins, draws, and losses, along with the lower and upper bounds of the
// 95% confidence interval around it.
func Elo(ws, ds, ls int) (lower float64, elo float64, upper float64) {
	n := float64(ws + ds + ls)
	if n == 0 {
		return 0, 0, 0
	}

	w := float64(ws) / n
	d := float64(ds) / n
	l := float64(ls) / n

	// empirical mean score
	mu := w + d/2

	// standard error of the mean score
	sigma := math.Sqrt(w*math.Pow(1-mu, 2)+d*math.Pow(0.5-mu, 2)+l*math.Pow(0-mu, 2)) / math.Sqrt(n)

	muMin := mu + phiInv(0.025)*sigma
	muMax := mu + phiInv(0.975)*sigma

	return scoreToElo(muMin), scoreToElo(mu), scoreToElo(muMax)
}

// Error returns the half width of the confidence interval around elo.
func Error(lower, elo, upper float64) float64 {
	return math.Abs(math.Max(upper-elo, elo-lower))
}

// scoreToElo converts an expected score to an elo difference. Scores of 0
// and 1 have an infinite elo difference and are reported as 0.
func scoreToElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

// phiInv is the quantile function of the standard normal distribution.
func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
