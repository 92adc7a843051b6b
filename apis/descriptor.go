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

package apis

// ErrorDescriptor is a flat, transport-friendly description of one record
// taken from the shared error queue.
//
// It uses plain strings and ints so adapters (HTTP, gRPC, log shippers) can
// carry it without importing the lib/reason packages.
type ErrorDescriptor struct {
	// Code is the packed error code in the emulated library's hex form,
	// e.g. "0A0C0102".
	Code string `json:"code"`

	// Lib is the symbolic library name, e.g. "SSL".
	Lib string `json:"lib"`

	// Reason is the reason name, e.g. "PassedNullParameter".
	Reason string `json:"reason"`

	// Fatal reports whether the reason carries the fatal flag.
	Fatal bool `json:"fatal,omitempty"`

	// HTTPStatus is the resolved HTTP status. 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the record's data string.
	Message string `json:"message,omitempty"`
}
