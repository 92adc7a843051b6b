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
	"syscall"
	"testing"

	"dirpx.dev/sslerr/lib"
	"dirpx.dev/sslerr/reason"
)

func TestPack(t *testing.T) {
	tests := []struct {
		name string
		l    lib.Lib
		r    reason.Reason
		want uint32
	}{
		{"ssl null", lib.SSL, reason.PassedNullParameter, 0x0A0C0102},
		{"ssl internal", lib.SSL, reason.InternalError, 0x0A0C0103},
		{"ssl lock", lib.SSL, reason.UnableToGetWriteLock, 0x0A0C0110},
		{"ssl unsupported", lib.SSL, reason.Unsupported, 0x0A08010C},
		{"user failed", lib.User, reason.OperationFailed, 0x400C0107},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pack(tt.l, tt.r)
			if got != tt.want {
				t.Fatalf("Pack = %08X, want %08X", got, tt.want)
			}
			l, r := Unpack(got)
			if l != tt.l || r != tt.r {
				t.Fatalf("Unpack(%08X) = (%d, %#x), want (%d, %#x)", got, l, int32(r), tt.l, int32(tt.r))
			}
		})
	}
}

func TestUnpack_SystemFlag(t *testing.T) {
	l, r := Unpack(SystemFlag | uint32(syscall.ENOENT))
	if l != lib.Sys {
		t.Fatalf("lib = %d, want Sys", l)
	}
	if r != reason.Reason(syscall.ENOENT) {
		t.Fatalf("reason = %d, want ENOENT", r)
	}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{0x0A0C0102, "error:0A0C0102:SSL routines::passed a null parameter"},
		{0x0A08010C, "error:0A08010C:SSL routines::unsupported"},
		{0x400C0107, "error:400C0107:user library::operation fail"},
		{Pack(lib.Lib(99), reason.Reason(5)), "error:31800005:lib(99)::reason(5)"},
		{SystemFlag | uint32(syscall.ENOENT), "error:80000002:system library::" + syscall.ENOENT.Error()},
	}
	for _, tt := range tests {
		if got := ErrorString(tt.code); got != tt.want {
			t.Fatalf("ErrorString(%08X) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
