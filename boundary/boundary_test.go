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

package boundary

import (
	"io"
	"testing"
	"unsafe"

	"dirpx.dev/sslerr"
	"dirpx.dev/sslerr/errqueue"
	"dirpx.dev/sslerr/lib"
	log "dirpx.dev/sslerr/logger"
	"dirpx.dev/sslerr/reason"
	"dirpx.dev/sslerr/sentinel"
)

func installQueue(t *testing.T) *errqueue.Stack {
	t.Helper()
	q := errqueue.New()
	prev := errqueue.SetDefault(q)
	std := log.StandardLogger()
	out := std.Out
	std.SetOutput(io.Discard)
	t.Cleanup(func() {
		errqueue.SetDefault(prev)
		std.SetOutput(out)
	})
	return q
}

func TestCall_NormalResultPassesThrough(t *testing.T) {
	q := installQueue(t)

	got := Call(sentinel.Int, func() int32 { return 42 })
	if got != 42 {
		t.Fatalf("Call = %d, want 42", got)
	}
	if q.Len() != 0 {
		t.Fatalf("queue len = %d, want 0", q.Len())
	}
}

func TestCall_PanicBecomesSentinel(t *testing.T) {
	q := installQueue(t)

	reached := false
	got := Call(sentinel.Int, func() int32 {
		var m map[string]int
		m["boom"] = 1
		reached = true
		return 1
	})

	if got != 0 {
		t.Fatalf("Call = %d, want 0", got)
	}
	if reached {
		t.Fatalf("work after the panic must be abandoned")
	}
	if q.Len() != 1 {
		t.Fatalf("queue len = %d, want 1", q.Len())
	}
	rec, _ := q.Get()
	if rec.Lib != lib.SSL || rec.Reason != reason.InternalError {
		t.Fatalf("record = %+v", rec)
	}
	if rec.Data != "InternalError" {
		t.Fatalf("Data = %q, want InternalError", rec.Data)
	}
}

func TestCall_EveryConvention(t *testing.T) {
	installQueue(t)
	boom := func() { panic("invariant violated") }

	if v := Call(sentinel.Pointer, func() unsafe.Pointer { boom(); return nil }); v != nil {
		t.Fatalf("Pointer = %v", v)
	}
	if v := Call(sentinel.Ref[int], func() *int { boom(); return new(int) }); v != nil {
		t.Fatalf("Ref = %v", v)
	}
	if v := Call(sentinel.Long, func() int64 { boom(); return 7 }); v != 0 {
		t.Fatalf("Long = %d", v)
	}
	if v := Call(sentinel.Uint64, func() uint64 { boom(); return 7 }); v != 0 {
		t.Fatalf("Uint64 = %d", v)
	}
	if v := Call(sentinel.Uint32, func() uint32 { boom(); return 7 }); v != 0 {
		t.Fatalf("Uint32 = %d", v)
	}
	if v := Call(sentinel.Uint16, func() uint16 { boom(); return 7 }); v != 0 {
		t.Fatalf("Uint16 = %d", v)
	}
}

func TestCall_PanicWithErrorValue(t *testing.T) {
	q := installQueue(t)

	Call(sentinel.Int, func() int32 { panic(io.ErrClosedPipe) })

	rec, ok := q.Get()
	if !ok || rec.Reason != reason.InternalError {
		t.Fatalf("record = %+v, %v", rec, ok)
	}
}

func TestCall_ExplicitErrorIsNotDoubled(t *testing.T) {
	q := installQueue(t)

	got := Call(sentinel.Pointer, func() unsafe.Pointer {
		return sentinel.Pointer(sslerr.NullPointer().Raise())
	})
	if got != nil {
		t.Fatalf("Call = %v, want nil", got)
	}
	recs := q.Records()
	if len(recs) != 1 {
		t.Fatalf("queue len = %d, want 1", len(recs))
	}
	if recs[0].Lib != lib.SSL || recs[0].Reason != reason.PassedNullParameter || recs[0].Data != "PassedNullParameter" {
		t.Fatalf("record = %+v", recs[0])
	}
}

func TestDo(t *testing.T) {
	q := installQueue(t)

	ran := false
	Do(func() { ran = true })
	if !ran || q.Len() != 0 {
		t.Fatalf("normal Do: ran=%v len=%d", ran, q.Len())
	}

	after := false
	boom := func() { panic("boom") }
	Do(func() {
		boom()
		after = true
	})
	if after {
		t.Fatalf("work after the panic must be abandoned")
	}
	if q.Len() != 1 {
		t.Fatalf("queue len = %d, want 1", q.Len())
	}
}
