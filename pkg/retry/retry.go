/*
 *     Copyright 2020 The Dragonfly Authors
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
package retry

import (
	"context"
	"time"

	"d7y.io/fraudtrainer/pkg/math"
)

// Run calls f until it succeeds or cancels, ctx is done or maxAttempts
// calls are made, and returns the last error of f.
func Run(ctx context.Context,
	initBackoff time.Duration,
	maxBackoff time.Duration,
	maxAttempts int,
	f func() (cancel bool, err error)) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var cause error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			timer := time.NewTimer(math.Backoff(initBackoff, maxBackoff, 2.0, i))
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		var cancel bool
		cancel, cause = f()
		if cause == nil || cancel {
			break
		}
	}

	return cause
}
