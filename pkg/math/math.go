/*
 *     Copyright 2022 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package math

import (
	"math"
	"math/rand"
	"time"

	"golang.org/x/exp/constraints"
)

// Min returns the minimum of values.
func Min[T constraints.Ordered](values ...T) T {
	min := values[0]
	for _, value := range values {
		if value < min {
			min = value
		}
	}

	return min
}

// Backoff returns the wait before attempt, it grows from initial by factor,
// is capped by max and jittered down by up to a quarter.
func Backoff(initial, max time.Duration, factor float64, attempt int) time.Duration {
	if attempt < 1 || initial <= 0 {
		return 0
	}

	d := Min(float64(initial)*math.Pow(factor, float64(attempt-1)), float64(max))
	return time.Duration(d * (1 - rand.Float64()/4))
}
