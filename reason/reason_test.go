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

package reason

import (
	"encoding"
	"testing"
)

func TestFlags(t *testing.T) {
	if FlagFatal != 0x40000 {
		t.Fatalf("FlagFatal = %#x, want 0x40000", int32(FlagFatal))
	}
	if FlagCommon != 0x80000 {
		t.Fatalf("FlagCommon = %#x, want 0x80000", int32(FlagCommon))
	}
}

func TestEncodedValues(t *testing.T) {
	tests := []struct {
		r     Reason
		base  int32
		fatal bool
		want  int32
	}{
		{PassedNullParameter, 258, true, 0xC0102},
		{InternalError, 259, true, 0xC0103},
		{UnableToGetWriteLock, 272, true, 0xC0110},
		{OperationFailed, 263, true, 0xC0107},
		{Unsupported, 268, false, 0x8010C},
	}
	for _, tt := range tests {
		t.Run(tt.r.String(), func(t *testing.T) {
			if int32(tt.r) != tt.want {
				t.Fatalf("%s = %#x, want %#x", tt.r, int32(tt.r), tt.want)
			}
			fatal := int32(0)
			if tt.fatal {
				fatal = int32(FlagFatal)
			}
			if derived := tt.base | int32(FlagCommon) | fatal; derived != int32(tt.r) {
				t.Fatalf("%s: base|common|fatal = %#x, value = %#x", tt.r, derived, int32(tt.r))
			}
			if tt.r.Base() != tt.base {
				t.Fatalf("%s.Base() = %d, want %d", tt.r, tt.r.Base(), tt.base)
			}
			if tt.r.IsFatal() != tt.fatal {
				t.Fatalf("%s.IsFatal() = %v, want %v", tt.r, tt.r.IsFatal(), tt.fatal)
			}
			if !tt.r.IsCommon() {
				t.Fatalf("%s.IsCommon() = false", tt.r)
			}
			if tt.r&^Mask != 0 {
				t.Fatalf("%s does not fit the reason field", tt.r)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := map[Reason]string{
		PassedNullParameter:  "PassedNullParameter",
		InternalError:        "InternalError",
		UnableToGetWriteLock: "UnableToGetWriteLock",
		OperationFailed:      "OperationFailed",
		Unsupported:          "Unsupported",
		Reason(7):            "Reason(7)",
	}
	for r, want := range tests {
		if got := r.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}

func TestText(t *testing.T) {
	if got, ok := PassedNullParameter.Text(); !ok || got != "passed a null parameter" {
		t.Fatalf("Text() = %q, %v", got, ok)
	}
	if _, ok := Reason(7).Text(); ok {
		t.Fatalf("Text() on unknown reason must report false")
	}
}

func TestAll_IsCopy(t *testing.T) {
	a := All()
	if len(a) != 5 {
		t.Fatalf("len(All()) = %d, want 5", len(a))
	}
	a[0] = 0
	if All()[0] != PassedNullParameter {
		t.Fatalf("All() exposed internal slice")
	}
}

func TestParse(t *testing.T) {
	for _, r := range All() {
		got, err := Parse("  " + r.String() + " ")
		if err != nil || got != r {
			t.Fatalf("Parse(%q) = %v, %v", r.String(), got, err)
		}
	}
	if got, err := Parse("unsupported"); err != nil || got != Unsupported {
		t.Fatalf("Parse must ignore case: got %v, %v", got, err)
	}
	if _, err := Parse("NoSuchReason"); err != ErrReasonUnknown {
		t.Fatalf("Parse(unknown) err = %v, want ErrReasonUnknown", err)
	}
}

func TestReason_TextMarshalling(t *testing.T) {
	text, err := OperationFailed.MarshalText()
	if err != nil || string(text) != "OperationFailed" {
		t.Fatalf("MarshalText = %q, %v", text, err)
	}
	if _, err := Reason(1).MarshalText(); err == nil {
		t.Fatalf("MarshalText on unknown reason must fail")
	}

	var r Reason
	if err := r.UnmarshalText([]byte("  InternalError ")); err != nil {
		t.Fatalf("UnmarshalText unexpected error: %v", err)
	}
	if r != InternalError {
		t.Fatalf("UnmarshalText = %v, want InternalError", r)
	}
	var bad Reason
	if err := bad.UnmarshalText([]byte("bogus")); err == nil {
		t.Fatalf("UnmarshalText expected error")
	}

	var _ encoding.TextMarshaler = (*Reason)(nil)
	var _ encoding.TextUnmarshaler = (*Reason)(nil)
}
