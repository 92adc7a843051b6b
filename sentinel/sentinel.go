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

// Package sentinel maps a raised error to the failure value of an entry
// point's return convention.
//
// Each return category has its own function. None of them looks at the
// error: the detail has already been pushed to the shared queue by Raise,
// and the foreign caller reads it from there. The return value only says
// "this call failed", in the way the emulated library's callers expect:
//
//	pointer / handle     nil
//	int (C int)          0
//	long (C long)        0
//	uint64/uint32/uint16 0
//	void                 nothing
//
// This package lives outside sslerr so it cannot read an Error's fields.
package sentinel

import (
	"unsafe"

	"dirpx.dev/sslerr"
)

// Convention is the failure mapping for entry points returning T.
type Convention[T any] func(sslerr.Error) T

// Pointer is the failure value of entry points returning an opaque pointer.
func Pointer(sslerr.Error) unsafe.Pointer { return nil }

// Ref is the failure value of entry points returning a nullable typed
// pointer.
func Ref[T any](sslerr.Error) *T { return nil }

// Int is the failure value of entry points returning a C int, which by the
// emulated library's convention means 0 on error.
func Int(sslerr.Error) int32 { return 0 }

// Long is the failure value of entry points returning a C long.
func Long(sslerr.Error) int64 { return 0 }

// Uint64 is the failure value of option-mask style entry points.
func Uint64(sslerr.Error) uint64 { return 0 }

// Uint32 is the failure value of entry points returning a 32-bit id.
func Uint32(sslerr.Error) uint32 { return 0 }

// Uint16 is the failure value of entry points returning a 16-bit id.
func Uint16(sslerr.Error) uint16 { return 0 }

// Void consumes the error of an entry point with no return value.
func Void(sslerr.Error) {}

var (
	_ Convention[unsafe.Pointer] = Pointer
	_ Convention[*struct{}]      = Ref[struct{}]
	_ Convention[int32]          = Int
	_ Convention[int64]          = Long
	_ Convention[uint64]         = Uint64
	_ Convention[uint32]         = Uint32
	_ Convention[uint16]         = Uint16
)
