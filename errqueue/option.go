/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package errqueue

import "time"

// DefaultDepth matches the emulated library's per-queue record count.
const DefaultDepth = 16

// Option is a functional option for constructing a Stack.
type Option func(*Stack)

// WithDepth bounds the number of records kept. Non-positive values keep
// DefaultDepth.
func WithDepth(n int) Option {
	return func(s *Stack) {
		if n > 0 {
			s.depth = n
		}
	}
}

// WithClock replaces the time source used to stamp records.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Stack) {
		if now != nil {
			s.now = now
		}
	}
}
