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

// Package adapter converts error queue records into the portable shapes
// declared in package apis.
package adapter

import (
	"fmt"

	"dirpx.dev/sslerr/apis"
	"dirpx.dev/sslerr/errqueue"
	"dirpx.dev/sslerr/lib"
	"dirpx.dev/sslerr/reason"
)

// ToDescriptor converts a queue record together with its resolved transport
// status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging and for the gRPC error
// details. It carries both the packed code and the concrete transport
// statuses (HTTP and gRPC).
func ToDescriptor(rec errqueue.Record, st apis.Status) apis.ErrorDescriptor {
	return apis.ErrorDescriptor{
		Code:       hexCode(rec),
		Lib:        rec.Lib.String(),
		Reason:     rec.Reason.String(),
		Fatal:      rec.Reason.IsFatal(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    rec.Data,
	}
}

// ToView converts a queue record into a public ErrorView. No redaction is
// performed: the data string is exposed exactly as it was raised.
func ToView(rec errqueue.Record) apis.ErrorView {
	return apis.ErrorView{
		Code:    hexCode(rec),
		Error:   errqueue.ErrorString(rec.Code()),
		Message: rec.Data,
	}
}

func hexCode(rec errqueue.Record) string {
	return fmt.Sprintf("%08X", rec.Code())
}

// PanicRecord is the record the panic boundary raises for a caught panic.
// Transports answer a panicking request with it instead of reading the
// shared queue back, which may already hold records of other callers.
func PanicRecord() errqueue.Record {
	return errqueue.Record{
		Lib:    lib.SSL,
		Reason: reason.InternalError,
		Data:   reason.InternalError.String(),
	}
}
