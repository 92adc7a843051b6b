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

// Package mapper turns (lib, reason) pairs read back from the error queue
// into transport statuses for HTTP and gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the (lib, reason) pair;
//  2. per-reason default (library or user-adjusted);
//  3. global fallback (500 / codes.Internal).
//
// The library ships defaults for every reason this module raises
// (PassedNullParameter -> 400 / InvalidArgument, Unsupported -> 501 /
// Unimplemented, and so on) plus one override: wrapped USER failures map to
// 502 / Unavailable because they come from a dependency.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(lib.SSL, reason.Unsupported, http.StatusTeapot),
//	)
//	if err != nil {
//	    // invalid status or lib
//	}
//	st := m.Status(rec.Lib, rec.Reason)
//
// Mapper.Explain returns a human-readable trace of which tier matched. It is
// meant for logs and tests, not for parsing.
//
// All inputs are copied during New; a Mapper is safe for concurrent use.
package mapper
