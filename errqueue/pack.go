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
	"fmt"
	"syscall"

	"dirpx.dev/sslerr/lib"
	"dirpx.dev/sslerr/reason"
)

// Packed error code layout:
//
//	bit 31     system flag (errno in the low 31 bits)
//	bits 23-30 lib id
//	bits 0-22  reason, flags included
const (
	LibOffset  = 23
	SystemFlag = uint32(0x80000000)
	systemMask = uint32(0x7FFFFFFF)
)

// Pack builds the code external tooling reads from the queue.
func Pack(l lib.Lib, r reason.Reason) uint32 {
	return (uint32(l)&lib.Mask)<<LibOffset | uint32(r)&uint32(reason.Mask)
}

// Unpack splits a packed code back into its lib and reason.
// Codes carrying SystemFlag are reported as lib.Sys with the errno as
// reason.
func Unpack(code uint32) (lib.Lib, reason.Reason) {
	if code&SystemFlag != 0 {
		return lib.Sys, reason.Reason(code & systemMask)
	}
	return lib.Lib((code >> LibOffset) & lib.Mask), reason.Reason(code & uint32(reason.Mask))
}

// ErrorString renders code the way the emulated library's error-string
// function does:
//
//	error:0A0C0102:SSL routines::passed a null parameter
//
// The function field is always empty. Unknown libs and reasons render as
// "lib(N)" and "reason(N)".
func ErrorString(code uint32) string {
	l, r := Unpack(code)

	ls, ok := l.Text()
	if !ok {
		ls = fmt.Sprintf("lib(%d)", l)
	}

	var rs string
	if code&SystemFlag != 0 {
		rs = syscall.Errno(r).Error()
	} else if t, ok := r.Text(); ok {
		rs = t
	} else {
		rs = fmt.Sprintf("reason(%d)", r)
	}

	return fmt.Sprintf("error:%08X:%s::%s", code, ls, rs)
}
