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

package mapper

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/sslerr/apis"
	"dirpx.dev/sslerr/lib"
	"dirpx.dev/sslerr/reason"
	"google.golang.org/grpc/codes"
)

var (
	// ErrInvalidHTTPStatus is returned by New for statuses outside 100..599.
	ErrInvalidHTTPStatus = errors.New("mapper: invalid HTTP status")
	// ErrInvalidGRPCCode is returned by New for codes outside the gRPC range.
	ErrInvalidGRPCCode = errors.New("mapper: invalid gRPC code")
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process:
//
//  1. Seed the builder with library defaults (per reason and per pair).
//  2. Apply user-provided options.
//  3. Validate every status and every override lib.
//  4. Freeze all maps into fresh copies.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	for k, v := range defaultOverrides {
		b.httpOverride[k] = v.HTTP
		b.grpcOverride[k] = int(v.GRPC)
	}

	for _, opt := range opts {
		opt(b)
	}

	if err := validateHTTP(b.fallbackHTTP); err != nil {
		return nil, fmt.Errorf("mapper: fallback: %w", err)
	}
	if err := validateGRPC(b.fallbackGRPC); err != nil {
		return nil, fmt.Errorf("mapper: fallback: %w", err)
	}
	for r, v := range b.httpDefaults {
		if err := validateHTTP(v); err != nil {
			return nil, fmt.Errorf("mapper: HTTP default for %s: %w", r, err)
		}
	}
	for r, v := range b.grpcDefaults {
		if err := validateGRPC(v); err != nil {
			return nil, fmt.Errorf("mapper: gRPC default for %s: %w", r, err)
		}
	}
	for p, v := range b.httpOverride {
		if err := lib.Validate(p.lib); err != nil {
			return nil, fmt.Errorf("mapper: HTTP override for %s/%s: %w", p.lib, p.reason, err)
		}
		if err := validateHTTP(v); err != nil {
			return nil, fmt.Errorf("mapper: HTTP override for %s/%s: %w", p.lib, p.reason, err)
		}
	}
	for p, v := range b.grpcOverride {
		if err := lib.Validate(p.lib); err != nil {
			return nil, fmt.Errorf("mapper: gRPC override for %s/%s: %w", p.lib, p.reason, err)
		}
		if err := validateGRPC(v); err != nil {
			return nil, fmt.Errorf("mapper: gRPC override for %s/%s: %w", p.lib, p.reason, err)
		}
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults, identity),
		grpcDefault:  freeze(b.grpcDefaults, toCode),
		httpOverride: freeze(b.httpOverride, identity),
		grpcOverride: freeze(b.grpcOverride, toCode),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: codes.Code(b.fallbackGRPC),
	}, nil
}

// mapper is the immutable implementation. Lookups are two map reads at
// most and safe for concurrent use once constructed.
type mapper struct {
	httpDefault  map[reason.Reason]int
	grpcDefault  map[reason.Reason]codes.Code
	httpOverride map[pair]int
	grpcOverride map[pair]codes.Code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status.
//
// Resolution order (highest to lowest):
//  1. exact (lib, reason) override;
//  2. per-reason default;
//  3. fallback (500 unless configured).
func (m *mapper) HTTPStatus(l lib.Lib, r reason.Reason) int {
	if v, ok := m.httpOverride[pair{l, r}]; ok {
		return v
	}
	if v, ok := m.httpDefault[r]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status with the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(l lib.Lib, r reason.Reason) codes.Code {
	if v, ok := m.grpcOverride[pair{l, r}]; ok {
		return v
	}
	if v, ok := m.grpcDefault[r]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same inputs.
func (m *mapper) Status(l lib.Lib, r reason.Reason) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(l, r),
		GRPC: m.GRPCStatus(l, r),
	}
}

// Explain produces a textual trace of how the statuses were chosen:
//
//	lib="SSL" reason="Unsupported"
//	http: source=override -> 418
//	grpc: source=default -> UNIMPLEMENTED(12)
//
// source is one of override, default or fallback.
func (m *mapper) Explain(l lib.Lib, r reason.Reason) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "lib=%q reason=%q\n", l, r)

	switch {
	case has(m.httpOverride, pair{l, r}):
		_, _ = fmt.Fprintf(&b, "http: source=override -> %d\n", m.httpOverride[pair{l, r}])
	case has(m.httpDefault, r):
		_, _ = fmt.Fprintf(&b, "http: source=default -> %d\n", m.httpDefault[r])
	default:
		_, _ = fmt.Fprintf(&b, "http: source=fallback -> %d\n", m.fallbackHTTP)
	}

	switch {
	case has(m.grpcOverride, pair{l, r}):
		_, _ = fmt.Fprintf(&b, "grpc: source=override -> %s", grpcLabel(m.grpcOverride[pair{l, r}]))
	case has(m.grpcDefault, r):
		_, _ = fmt.Fprintf(&b, "grpc: source=default -> %s", grpcLabel(m.grpcDefault[r]))
	default:
		_, _ = fmt.Fprintf(&b, "grpc: source=fallback -> %s", grpcLabel(m.fallbackGRPC))
	}

	return b.String()
}

func grpcLabel(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}

func has[K comparable, V any](m map[K]V, k K) bool {
	_, ok := m[k]
	return ok
}

// freeze copies src into a fresh map, converting values with conv.
// Empty maps become nil.
func freeze[K comparable, V any](src map[K]int, conv func(int) V) map[K]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = conv(v)
	}
	return dst
}

func identity(v int) int      { return v }
func toCode(v int) codes.Code { return codes.Code(v) }

func validateHTTP(v int) error {
	if v < 100 || v > 599 {
		return ErrInvalidHTTPStatus
	}
	return nil
}

func validateGRPC(v int) error {
	if v < int(codes.OK) || v > int(codes.Unauthenticated) {
		return ErrInvalidGRPCCode
	}
	return nil
}
