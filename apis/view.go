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

// ErrorView is the minimal shape of a queue record we are comfortable
// exposing over the wire.
type ErrorView struct {
	// Code is the packed error code in hex, e.g. "0A08010C".
	Code string `json:"code"`

	// Error is the rendered error string,
	// e.g. "error:0A08010C:SSL routines::unsupported".
	Error string `json:"error"`

	// Message is the record's data string.
	Message string `json:"message,omitempty"`
}
