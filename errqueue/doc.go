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

// Package errqueue models the shared, process-wide error queue of the
// emulated library.
//
// The boundary code in this module only appends to the queue through the
// Sink interface: allocate a slot, then attach (lib, reason) and a data
// string. Reading the queue is the foreign caller's business; Stack
// provides the reading side (Get, Peek, PeekLast, Print) for the in-process
// implementation used by tests, the CLI and the diagnostic adapters.
//
// # Singleton
//
// Default returns the process-wide sink. It is created lazily on first use
// and can be replaced with SetDefault during initialisation or tests:
//
//	q := errqueue.New(errqueue.WithDepth(32))
//	prev := errqueue.SetDefault(q)
//	defer errqueue.SetDefault(prev)
//
// # Codes
//
// Records are identified externally by a packed 32-bit code:
//
//	(lib & 0xFF) << 23 | reason & 0x7FFFFF
//
// Pack, Unpack and ErrorString implement that encoding and its rendering.
package errqueue
