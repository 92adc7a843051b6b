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

package lib

import (
	"encoding"
	"testing"
)

func TestABIValues(t *testing.T) {
	if SSL != 20 {
		t.Fatalf("SSL = %d, want 20", SSL)
	}
	if User != 128 {
		t.Fatalf("User = %d, want 128", User)
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Lib
	}{
		{"symbolic", "SSL", SSL},
		{"lower", "user", User},
		{"spaces", "  x509  ", X509},
		{"decimal", "20", SSL},
		{"decimal unknown", "99", Lib(99)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "nope", "0", "256", "-3"} {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			if err != ErrLibInvalid {
				t.Fatalf("Parse(%q) = %d, %v; want ErrLibInvalid", in, got, err)
			}
		})
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse must panic on invalid lib")
		}
	}()
	_ = MustParse("not-a-lib")
}

func TestStringAndText(t *testing.T) {
	if got := SSL.String(); got != "SSL" {
		t.Fatalf("SSL.String() = %q", got)
	}
	if got, ok := SSL.Text(); !ok || got != "SSL routines" {
		t.Fatalf("SSL.Text() = %q, %v", got, ok)
	}
	if got := Lib(99).String(); got != "LIB(99)" {
		t.Fatalf("Lib(99).String() = %q", got)
	}
	if _, ok := Lib(99).Text(); ok {
		t.Fatalf("Lib(99).Text() must report unknown")
	}
	if !User.Known() || Lib(99).Known() {
		t.Fatalf("Known() mismatch")
	}
}

func TestCatalogNamesRoundTrip(t *testing.T) {
	for l, d := range catalog {
		got, err := Parse(d.name)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", d.name, err)
		}
		if got != l {
			t.Fatalf("Parse(%q) = %d, want %d", d.name, got, l)
		}
		if err := Validate(l); err != nil {
			t.Fatalf("catalog entry %d does not fit the lib field", l)
		}
	}
}

func TestLib_TextMarshalling(t *testing.T) {
	text, err := User.MarshalText()
	if err != nil || string(text) != "USER" {
		t.Fatalf("MarshalText = %q, %v", text, err)
	}
	if _, err := Lib(0).MarshalText(); err == nil {
		t.Fatalf("MarshalText on zero lib must fail")
	}

	var l Lib
	if err := l.UnmarshalText([]byte(" ssl ")); err != nil {
		t.Fatalf("UnmarshalText unexpected error: %v", err)
	}
	if l != SSL {
		t.Fatalf("UnmarshalText = %d, want %d", l, SSL)
	}

	var _ encoding.TextMarshaler = (*Lib)(nil)
	var _ encoding.TextUnmarshaler = (*Lib)(nil)
}
