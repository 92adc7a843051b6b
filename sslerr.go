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

// Package sslerr converts internal failures into the error-reporting
// convention of the emulated C-ABI TLS library.
//
// An Error is built at the failure site with one of the constructors,
// raised exactly once (which appends a record to the shared error queue),
// and then converted into the entry point's failure value with package
// sentinel. Package boundary wraps every entry point so that a panic takes
// the same route.
//
//	if ctx == nil {
//	    return sentinel.Int(sslerr.NullPointer().Raise())
//	}
package sslerr

import (
	"fmt"

	"dirpx.dev/sslerr/lib"
	"dirpx.dev/sslerr/reason"
)

// Error is a failure on its way to the shared error queue.
//
// It is a plain value with a single-call lifetime: construct it, Raise it,
// convert it. Fields are unexported; only Raise reads them, so everything
// the foreign caller may learn about a failure goes through the queue.
type Error struct {
	lib     lib.Lib
	reason  reason.Reason
	hint    string
	hasHint bool
}

// UnexpectedPanic reports a panic caught at an entry point.
func UnexpectedPanic() Error {
	return Error{lib: lib.SSL, reason: reason.InternalError}
}

// NullPointer reports a required pointer argument that was null.
func NullPointer() Error {
	return Error{lib: lib.SSL, reason: reason.PassedNullParameter}
}

// CannotLock reports a failure to acquire an internal lock.
func CannotLock() Error {
	return Error{lib: lib.SSL, reason: reason.UnableToGetWriteLock}
}

// NotSupported reports a feature or setting this library does not provide.
// hint is stored verbatim and becomes the queue record's data string.
func NotSupported(hint string) Error {
	return Error{lib: lib.SSL, reason: reason.Unsupported, hint: hint, hasHint: true}
}

// BadData reports malformed or unusable input. hint is stored verbatim.
func BadData(hint string) Error {
	return Error{lib: lib.SSL, reason: reason.OperationFailed, hint: hint, hasHint: true}
}

// FromTLS wraps a failure of the TLS engine. The rendered error text becomes
// the hint; a nil err yields an Error without hint.
func FromTLS(err error) Error {
	return wrapped(err)
}

// FromIO wraps an I/O failure. The rendered error text becomes the hint; a
// nil err yields an Error without hint.
func FromIO(err error) Error {
	return wrapped(err)
}

func wrapped(err error) Error {
	e := Error{lib: lib.User, reason: reason.OperationFailed}
	if err != nil {
		e.hint, e.hasHint = err.Error(), true
	}
	return e
}

// String renders the error for local diagnostics:
//
//	SSL:Unsupported: renegotiation
func (e Error) String() string {
	if e.hasHint {
		return fmt.Sprintf("%s:%s: %s", e.lib, e.reason, e.hint)
	}
	return fmt.Sprintf("%s:%s", e.lib, e.reason)
}

// message is the data string pushed to the queue: the hint when present,
// the reason's default name otherwise.
func (e Error) message() string {
	if e.hasHint {
		return e.hint
	}
	return e.reason.String()
}
