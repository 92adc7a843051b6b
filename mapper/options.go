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
	"dirpx.dev/sslerr/lib"
	"dirpx.dev/sslerr/reason"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for a reason.
func WithHTTPDefault(r reason.Reason, http int) Option {
	return func(b *builder) { b.httpDefaults[r] = http }
}

// WithGRPCDefault sets or replaces the default gRPC status for a reason.
func WithGRPCDefault(r reason.Reason, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[r] = grpc }
}

// WithHTTPOverride registers an exact HTTP status for one (lib, reason)
// pair. Overrides win over reason defaults.
func WithHTTPOverride(l lib.Lib, r reason.Reason, http int) Option {
	return func(b *builder) { b.httpOverride[pair{l, r}] = http }
}

// WithGRPCOverride registers an exact gRPC status for one (lib, reason) pair.
func WithGRPCOverride(l lib.Lib, r reason.Reason, grpc int) Option {
	return func(b *builder) { b.grpcOverride[pair{l, r}] = grpc }
}

// WithFallback replaces the statuses used for reasons without any rule.
func WithFallback(http, grpc int) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
