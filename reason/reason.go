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
	"bytes"
	"encoding"
	"errors"
	"strconv"
	"strings"
)

// Reason is a condition code as stored on the shared error queue.
//
// Every value is encoded as:
//
//	base | FlagCommon | FlagFatal?
//
// where base is the registry's reason number and the flags live in the high
// bits reserved by the emulated library (see FlagsOffset). The full encoded
// value, flags included, is what external tooling reads back, so the
// constants below are ABI and are tested by numeric value.
type Reason int32

// Bit layout shared with the emulated library's err.h.
const (
	// FlagsOffset is the bit position of the reason flags.
	FlagsOffset = 18

	// FlagFatal marks a reason that ends the current operation.
	FlagFatal Reason = 0x1 << FlagsOffset

	// FlagCommon marks a reason from the shared, library-independent table.
	FlagCommon Reason = 0x2 << FlagsOffset

	// Mask covers the reason field of a packed error code (flags included).
	Mask Reason = 0x7FFFFF

	// BaseMask covers the base reason number (flags excluded).
	BaseMask Reason = (1 << FlagsOffset) - 1
)

// Reasons raised by this module.
const (
	// PassedNullParameter: a required pointer argument was null.
	PassedNullParameter Reason = FlagFatal | FlagCommon | 258

	// InternalError: an invariant was violated or a panic was caught.
	InternalError Reason = FlagFatal | FlagCommon | 259

	// UnableToGetWriteLock: a mutual-exclusion primitive could not be taken.
	// Terminal; callers are not expected to retry.
	UnableToGetWriteLock Reason = FlagFatal | FlagCommon | 272

	// OperationFailed: the operation could not complete. Used for wrapped
	// engine and I/O failures and for malformed input.
	OperationFailed Reason = FlagFatal | FlagCommon | 263

	// Unsupported: a feature or setting this reimplementation does not provide.
	Unsupported Reason = FlagCommon | 268
)

var (
	// ErrReasonUnknown is returned when a name does not match any reason.
	ErrReasonUnknown = errors.New("sslerr: unknown reason")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

type descriptor struct {
	name string
	text string
}

// Declaration order is kept for All.
var ordered = []Reason{
	PassedNullParameter,
	InternalError,
	UnableToGetWriteLock,
	OperationFailed,
	Unsupported,
}

var catalog = map[Reason]descriptor{
	PassedNullParameter:  {"PassedNullParameter", "passed a null parameter"},
	InternalError:        {"InternalError", "internal error"},
	UnableToGetWriteLock: {"UnableToGetWriteLock", "unable to get write lock"},
	OperationFailed:      {"OperationFailed", "operation fail"},
	Unsupported:          {"Unsupported", "unsupported"},
}

// All returns the reasons raised by this module in declaration order.
// The returned slice is a fresh copy.
func All() []Reason {
	out := make([]Reason, len(ordered))
	copy(out, ordered)
	return out
}

// Parse resolves a reason by name. Matching ignores case and surrounding
// spaces, so "passednullparameter" is accepted.
func Parse(s string) (Reason, error) {
	s = strings.TrimSpace(s)
	for _, r := range ordered {
		if strings.EqualFold(catalog[r].name, s) {
			return r, nil
		}
	}
	return 0, ErrReasonUnknown
}

// Base returns the reason number without flags.
func (r Reason) Base() int32 { return int32(r & BaseMask) }

// IsFatal reports whether FlagFatal is set.
func (r Reason) IsFatal() bool { return r&FlagFatal != 0 }

// IsCommon reports whether FlagCommon is set.
func (r Reason) IsCommon() bool { return r&FlagCommon != 0 }

// Known reports whether r is one of the reasons in All.
func (r Reason) Known() bool {
	_, ok := catalog[r]
	return ok
}

// String returns the default textual name of the reason, e.g.
// "PassedNullParameter". This is the message pushed to the queue when an
// error carries no hint.
func (r Reason) String() string {
	if d, ok := catalog[r]; ok {
		return d.name
	}
	return "Reason(" + strconv.Itoa(int(r)) + ")"
}

// Text returns the registry's reason string, e.g. "passed a null parameter".
// The second result is false for reasons outside the catalog.
func (r Reason) Text() (string, bool) {
	d, ok := catalog[r]
	if !ok {
		return "", false
	}
	return d.text, true
}

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	if !r.Known() {
		return nil, ErrReasonUnknown
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
