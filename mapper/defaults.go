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

	"dirpx.dev/sslerr/apis"
	"dirpx.dev/sslerr/lib"
	"dirpx.dev/sslerr/reason"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the built-in HTTP mapping per reason.
var defaultHTTP = map[reason.Reason]int{
	reason.PassedNullParameter:  http.StatusBadRequest,          // Caller contract violation.
	reason.InternalError:        http.StatusInternalServerError, // Invariant violation or caught panic.
	reason.UnableToGetWriteLock: http.StatusConflict,            // Lock contention; terminal for this call.
	reason.OperationFailed:      http.StatusInternalServerError, // Generic failure of the operation.
	reason.Unsupported:          http.StatusNotImplemented,      // Feature not provided by this library.
}

// defaultGRPC defines the built-in gRPC mapping per reason.
var defaultGRPC = map[reason.Reason]codes.Code{
	reason.PassedNullParameter:  codes.InvalidArgument,
	reason.InternalError:        codes.Internal,
	reason.UnableToGetWriteLock: codes.Aborted,
	reason.OperationFailed:      codes.Unknown,
	reason.Unsupported:          codes.Unimplemented,
}

// defaultOverrides refines wrapped engine and I/O failures: they come from
// a dependency rather than from the caller or this library.
var defaultOverrides = map[pair]apis.Status{
	{lib.User, reason.OperationFailed}: {HTTP: http.StatusBadGateway, GRPC: codes.Unavailable},
}
