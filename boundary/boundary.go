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

// Package boundary is the panic net around every entry point exposed to
// foreign callers.
//
// A panic must never unwind into a foreign caller's frames. Entry points
// are written as thin trampolines that run their body through Call (or Do
// for entry points without a result):
//
//	func SSLCtxSetOptions(ctx *Ctx, opts uint64) uint64 {
//	    return boundary.Call(sentinel.Uint64, func() uint64 {
//	        if ctx == nil {
//	            return sentinel.Uint64(sslerr.NullPointer().Raise())
//	        }
//	        return ctx.setOptions(opts)
//	    })
//	}
//
// On a panic the rest of the body is abandoned, the panic is logged with its
// stack, sslerr.UnexpectedPanic is raised onto the shared queue and the
// convention's failure value is returned instead.
package boundary

import (
	"runtime/debug"

	"dirpx.dev/sslerr"
	log "dirpx.dev/sslerr/logger"
	"dirpx.dev/sslerr/sentinel"
)

// Call runs fn and returns its result. If fn panics, Call raises an
// unexpected-panic error and returns conv's failure value.
func Call[T any](conv sentinel.Convention[T], fn func() T) (ret T) {
	defer func() {
		if p := recover(); p != nil {
			ret = conv(caught(p))
		}
	}()
	return fn()
}

// Do is Call for entry points with no result.
func Do(fn func()) {
	defer func() {
		if p := recover(); p != nil {
			sentinel.Void(caught(p))
		}
	}()
	fn()
}

func caught(p any) sslerr.Error {
	log.WithFields(log.Fields{
		"panic": p,
		"stack": string(debug.Stack()),
	}).Error("panic at entry point")
	return sslerr.UnexpectedPanic().Raise()
}
