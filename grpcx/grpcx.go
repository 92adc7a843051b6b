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

// Package grpcx exposes error queue records to gRPC clients.
package grpcx

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/sslerr"
	"dirpx.dev/sslerr/adapter"
	"dirpx.dev/sslerr/apis"
	"dirpx.dev/sslerr/boundary"
	"dirpx.dev/sslerr/errqueue"
	log "dirpx.dev/sslerr/logger"
	"dirpx.dev/sslerr/sentinel"
)

// Metadata keys set on the ErrorInfo detail.
const (
	MetaCode     = "code"
	MetaData     = "data"
	MetaIncident = "incident"
)

// Status builds a gRPC status for rec. The code is resolved through m and
// the status carries an errdetails.ErrorInfo with:
//
//   - Domain: the library text, e.g. "SSL routines";
//   - Reason: the reason name, e.g. "PassedNullParameter";
//   - Metadata: the packed code in hex and the record's data string.
func Status(m apis.Mapper, rec errqueue.Record) *gstatus.Status {
	return status(m, rec, "")
}

// status is Status with an optional incident id added to the metadata.
func status(m apis.Mapper, rec errqueue.Record, incident string) *gstatus.Status {
	code := m.GRPCStatus(rec.Lib, rec.Reason)
	base := gstatus.New(code, rec.String())

	domain, ok := rec.Lib.Text()
	if !ok {
		domain = rec.Lib.String()
	}
	info := &errdetails.ErrorInfo{
		Domain: domain,
		Reason: rec.Reason.String(),
		Metadata: map[string]string{
			MetaCode: fmt.Sprintf("%08X", rec.Code()),
			MetaData: rec.Data,
		},
	}
	if incident != "" {
		info.Metadata[MetaIncident] = incident
	}

	// WithDetails refuses an OK status; keep the bare one then.
	with, err := base.WithDetails(info)
	if err != nil {
		return base
	}
	return with
}

type outcome struct {
	resp     any
	err      error
	panicked bool
}

// UnaryServerInterceptor runs handlers inside the panic boundary. A handler
// panic is raised onto the shared queue like any other entry point and the
// client receives the status of the panic record, tagged with a fresh
// incident id that is also logged. The shared queue is never read back: it
// may already hold records raised by concurrent calls.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	var failed sentinel.Convention[outcome] = func(sslerr.Error) outcome { return outcome{panicked: true} }

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		out := boundary.Call(failed, func() outcome {
			resp, err := handler(ctx, req)
			return outcome{resp: resp, err: err}
		})
		if !out.panicked {
			return out.resp, out.err
		}

		rec := adapter.PanicRecord()
		incident := uuid.NewString()
		log.WithTrace(ctx).WithFields(log.Fields{
			"method":   info.FullMethod,
			"incident": incident,
			"error":    adapter.ToDescriptor(rec, m.Status(rec.Lib, rec.Reason)),
		}).Warn("handler panicked")
		return nil, status(m, rec, incident).Err()
	}
}

// ExtractErrorInfo pulls the ErrorInfo detail out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, gcodes.Code, bool) {
	if err == nil {
		return nil, gcodes.OK, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, gcodes.Unknown, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			return ei, st.Code(), true
		}
	}
	return nil, st.Code(), false
}
