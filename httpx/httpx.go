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

// Package httpx writes error queue records as HTTP responses.
package httpx

import (
	"net/http"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/sslerr"
	"dirpx.dev/sslerr/adapter"
	"dirpx.dev/sslerr/apis"
	"dirpx.dev/sslerr/boundary"
	"dirpx.dev/sslerr/errqueue"
	log "dirpx.dev/sslerr/logger"
	"dirpx.dev/sslerr/sentinel"
)

// Writer is a thin adapter that knows how to turn a queue record into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes the record's apis.ErrorView as JSON and writes it to rw.
// The HTTP status is resolved via the Mapper.
//
// No redaction is performed here: the data string is exposed as-is.
func (w Writer) Write(rw http.ResponseWriter, rec errqueue.Record) {
	w.write(rw, rec, "")
}

func (w Writer) write(rw http.ResponseWriter, rec errqueue.Record, incident string) {
	st := w.Mapper.Status(rec.Lib, rec.Reason)
	view := adapter.ToView(rec)

	fields := map[string]any{
		"code":  view.Code,
		"error": view.Error,
	}
	if view.Message != "" {
		fields["message"] = view.Message
	}
	if incident != "" {
		fields["incident"] = incident
	}

	b, err := encode(fields)
	if err != nil {
		// Data strings are not guaranteed to be UTF-8; keep the status and
		// fall back to the plain error string.
		log.WithError(err).Warn("cannot encode error view")
		http.Error(rw, view.Error, st.HTTP)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(b)
}

// encode renders fields through protojson, which keeps the output aligned
// with the gRPC detail encoding.
func encode(fields map[string]any) ([]byte, error) {
	body, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(body)
}

// IncidentHeader carries the incident id of a recovered panic.
const IncidentHeader = "X-Incident-Id"

// responseState records whether the wrapped handler committed a response.
type responseState struct {
	http.ResponseWriter
	wrote bool
}

func (s *responseState) WriteHeader(code int) {
	// 1xx responses do not commit the final status.
	if code >= http.StatusOK {
		s.wrote = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *responseState) Write(b []byte) (int, error) {
	s.wrote = true
	return s.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *responseState) Unwrap() http.ResponseWriter { return s.ResponseWriter }

// Recover wraps next in the panic boundary. A panicking handler raises
// onto the shared queue and, unless it already wrote a response, the
// panic record is written back tagged with a fresh incident id that is
// also logged.
//
// http.ErrAbortHandler is not an error: it passes through the boundary
// untouched so net/http can abort the response.
func Recover(m apis.Mapper, next http.Handler) http.Handler {
	w := Writer{Mapper: m}
	var panicked sentinel.Convention[bool] = func(sslerr.Error) bool { return true }

	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		sw := &responseState{ResponseWriter: rw}
		aborted := false

		failed := boundary.Call(panicked, func() bool {
			defer func() {
				if p := recover(); p != nil {
					if p == http.ErrAbortHandler {
						aborted = true
						return
					}
					panic(p)
				}
			}()
			next.ServeHTTP(sw, r)
			return false
		})
		if aborted {
			panic(http.ErrAbortHandler)
		}
		if !failed {
			return
		}

		rec := adapter.PanicRecord()
		incident := uuid.NewString()
		entry := log.WithTrace(r.Context()).WithFields(log.Fields{
			"path":     r.URL.Path,
			"incident": incident,
			"error":    adapter.ToDescriptor(rec, m.Status(rec.Lib, rec.Reason)),
		})
		if sw.wrote {
			entry.Warn("handler panicked after writing the response")
			return
		}
		entry.Warn("handler panicked")
		rw.Header().Set(IncidentHeader, incident)
		w.write(rw, rec, incident)
	})
}
