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
	"bytes"
	"encoding"
	"errors"
	"strconv"
	"strings"
)

// Lib identifies the subsystem that raised an error.
//
// The numeric value is part of the emulated library's ABI: it is packed into
// the top byte of every error code on the shared error queue and read back
// by external tooling. Values MUST match the emulated registry exactly.
type Lib int32

// Mask is the width of a library id inside a packed error code.
// Ids outside 1..Mask cannot be represented on the queue.
const Mask = 0xFF

var (
	// ErrLibInvalid is returned when a value cannot be parsed or validated
	// as a library id.
	ErrLibInvalid = errors.New("sslerr: invalid lib")
)

// Ensure Lib implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into config or JSON views.
var (
	_ encoding.TextMarshaler   = (*Lib)(nil)
	_ encoding.TextUnmarshaler = (*Lib)(nil)
)

// Parse accepts either a symbolic name ("SSL", "user", "x509") or a decimal
// id ("20") and returns the matching Lib.
//
// Symbolic names are resolved case-insensitively against the catalog.
// Decimal ids are accepted as long as they fit into Mask, even when the
// catalog has no name for them.
func Parse(s string) (Lib, error) {
	s = Normalize(s)
	if s == "" {
		return 0, ErrLibInvalid
	}
	if l, ok := byName[s]; ok {
		return l, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrLibInvalid
	}
	l := Lib(n)
	if err := Validate(l); err != nil {
		return 0, err
	}
	return l, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Lib {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

// Normalize trims spaces and upper-cases s, which is the form catalog names
// are stored in.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Validate reports whether l fits into the lib field of a packed code.
// Zero is reserved and rejected.
func Validate(l Lib) error {
	if l <= 0 || l > Mask {
		return ErrLibInvalid
	}
	return nil
}

// String returns the short symbolic name, e.g. "SSL", or "LIB(n)" for ids
// outside the catalog.
func (l Lib) String() string {
	if d, ok := catalog[l]; ok {
		return d.name
	}
	return "LIB(" + strconv.Itoa(int(l)) + ")"
}

// Text returns the registry description used in rendered error strings,
// e.g. "SSL routines". The second result is false for unknown ids.
func (l Lib) Text() (string, bool) {
	d, ok := catalog[l]
	if !ok {
		return "", false
	}
	return d.text, true
}

// Known reports whether l is present in the catalog.
func (l Lib) Known() bool {
	_, ok := catalog[l]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (l Lib) MarshalText() ([]byte, error) {
	if err := Validate(l); err != nil {
		return nil, err
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Lib) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
