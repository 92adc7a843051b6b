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

import (
	"sync"

	"dirpx.dev/sslerr/lib"
	"dirpx.dev/sslerr/reason"
)

// Sink is the append side of the shared error queue.
//
// It mirrors the two operations the emulated library exposes for raising
// errors: allocate a fresh slot, then attach (lib, reason) and a formatted
// data string to it. Implementations must be safe for concurrent use; the
// callers in this module do not synchronise.
type Sink interface {
	// New allocates a new, empty slot on top of the queue.
	New()

	// SetError tags the top slot with l and r and stores the data string
	// produced by rendering format with args.
	SetError(l lib.Lib, r reason.Reason, format string, args ...any)
}

var (
	defaultMu   sync.Mutex
	defaultSink Sink
)

// Default returns the process-wide sink.
//
// The first call creates a *Stack with default options unless SetDefault
// installed a sink earlier.
func Default() Sink {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSink == nil {
		defaultSink = New()
	}
	return defaultSink
}

// SetDefault installs s as the process-wide sink and returns the previous
// one (nil if none was created yet). Passing nil resets the singleton; the
// next Default call creates a fresh *Stack.
func SetDefault(s Sink) Sink {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultSink
	defaultSink = s
	return prev
}
