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

// Package logger is a thin wrapper around logrus' standard logger.
//
// It is designed to be imported as `log`, so every package of this module
// shares one backend configured once through Init. Records written here are
// local diagnostics; they never reach the foreign caller.
package logger

import (
	"context"
	"io"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

type Fields = log.Fields
type Entry = log.Entry
type Logger = log.Logger
type Level = log.Level

const (
	InfoLevel  = log.InfoLevel
	DebugLevel = log.DebugLevel
)

func StandardLogger() *Logger { return log.StandardLogger() }
func SetLevel(level Level)    { log.SetLevel(level) }
func GetLevel() Level         { return log.GetLevel() }
func SetOutput(out io.Writer) { log.SetOutput(out) }

func WithField(key string, value any) *Entry { return log.WithField(key, value) }
func WithFields(fields Fields) *Entry        { return log.WithFields(fields) }
func WithError(err error) *Entry             { return log.WithError(err) }

// WithTrace binds ctx and adds "trace_id" when an OpenTelemetry span context
// is present.
func WithTrace(ctx context.Context) *Entry {
	if ctx == nil {
		return log.NewEntry(log.StandardLogger())
	}
	e := log.WithContext(ctx)
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		e = e.WithField("trace_id", sc.TraceID().String())
	}
	return e
}

func Warnf(format string, args ...any) { log.Warnf(format, args...) }
