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
	"io"
	"sync"
	"time"

	"dirpx.dev/sslerr/lib"
	"dirpx.dev/sslerr/reason"
)

// Record is one entry on the error queue.
type Record struct {
	// Seq is a per-stack sequence number, starting at 1.
	Seq uint64

	Lib    lib.Lib
	Reason reason.Reason

	// Data is the rendered data string attached by SetError.
	Data string

	// Time is when the slot was allocated.
	Time time.Time

	set bool
}

// Code returns the packed error code of the record.
func (r Record) Code() uint32 { return Pack(r.Lib, r.Reason) }

// String renders the record as its error string followed by the data
// string, if any.
func (r Record) String() string {
	s := ErrorString(r.Code())
	if r.Data != "" {
		s += ":" + r.Data
	}
	return s
}

// Stack is an in-process error queue with the emulated library's
// semantics: bounded, oldest-first reads, oldest record dropped on
// overflow. It implements Sink and is safe for concurrent use.
type Stack struct {
	mu    sync.Mutex
	recs  []Record
	depth int
	seq   uint64
	now   func() time.Time
}

var _ Sink = (*Stack)(nil)

// New constructs an empty Stack.
func New(opts ...Option) *Stack {
	s := &Stack{depth: DefaultDepth, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.recs = make([]Record, 0, s.depth)
	return s
}

// New allocates a fresh slot on top of the stack. The slot stays invisible
// to readers until SetError fills it.
func (s *Stack) New() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.push()
}

// SetError fills the top slot. If the top slot is already filled (New was
// not called), a slot is allocated implicitly.
func (s *Stack) SetError(l lib.Lib, r reason.Reason, format string, args ...any) {
	data := fmt.Sprintf(format, args...)

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.recs) == 0 || s.recs[len(s.recs)-1].set {
		s.push()
	}
	top := &s.recs[len(s.recs)-1]
	top.Lib = l
	top.Reason = r
	top.Data = data
	top.set = true
}

// push must be called with mu held.
func (s *Stack) push() {
	if len(s.recs) == s.depth {
		copy(s.recs, s.recs[1:])
		s.recs = s.recs[:len(s.recs)-1]
	}
	s.seq++
	s.recs = append(s.recs, Record{Seq: s.seq, Time: s.now()})
}

// Get removes and returns the oldest filled record.
func (s *Stack) Get() (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.recs) > 0 {
		rec := s.recs[0]
		s.recs = s.recs[1:]
		if rec.set {
			return rec, true
		}
	}
	return Record{}, false
}

// Peek returns the oldest filled record without removing it.
func (s *Stack) Peek() (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.recs {
		if rec.set {
			return rec, true
		}
	}
	return Record{}, false
}

// PeekLast returns the newest filled record without removing it.
func (s *Stack) PeekLast() (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.recs) - 1; i >= 0; i-- {
		if s.recs[i].set {
			return s.recs[i], true
		}
	}
	return Record{}, false
}

// Len reports the number of filled records.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, rec := range s.recs {
		if rec.set {
			n++
		}
	}
	return n
}

// Records returns a snapshot of the filled records, oldest first.
func (s *Stack) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, 0, len(s.recs))
	for _, rec := range s.recs {
		if rec.set {
			out = append(out, rec)
		}
	}
	return out
}

// Clear drops every record.
func (s *Stack) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = s.recs[:0]
}

// Print drains the stack into w, one line per record:
//
//	<seq>:error:0A08010C:SSL routines::unsupported:renegotiation
func (s *Stack) Print(w io.Writer) error {
	for {
		rec, ok := s.Get()
		if !ok {
			return nil
		}
		if _, err := fmt.Fprintf(w, "%d:%s:%s\n", rec.Seq, ErrorString(rec.Code()), rec.Data); err != nil {
			return err
		}
	}
}
