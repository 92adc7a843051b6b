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
	"net/http"

	"dirpx.dev/sslerr/lib"
	"dirpx.dev/sslerr/reason"
	"google.golang.org/grpc/codes"
)

// pair keys exact overrides.
type pair struct {
	lib    lib.Lib
	reason reason.Reason
}

type builder struct {
	// httpDefaults holds per-reason HTTP defaults (library defaults merged
	// with user adjustments).
	httpDefaults map[reason.Reason]int
	// grpcDefaults holds per-reason gRPC defaults as ints; converted in New().
	grpcDefaults map[reason.Reason]int

	// httpOverride holds exact (lib, reason) HTTP overrides.
	httpOverride map[pair]int
	// grpcOverride holds exact (lib, reason) gRPC overrides as ints.
	grpcOverride map[pair]int

	// global fallbacks used when a reason has no default at all.
	fallbackHTTP int
	fallbackGRPC int
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[reason.Reason]int, len(defaultHTTP)),
		grpcDefaults: make(map[reason.Reason]int, len(defaultGRPC)),

		httpOverride: make(map[pair]int, len(defaultOverrides)),
		grpcOverride: make(map[pair]int, len(defaultOverrides)),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: int(codes.Internal),
	}
}
