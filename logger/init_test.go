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

package logger

import (
	"context"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

func restore(t *testing.T) {
	t.Helper()
	std := log.StandardLogger()
	out, lvl, fmtr, caller := std.Out, std.GetLevel(), std.Formatter, std.ReportCaller
	t.Cleanup(func() {
		std.SetOutput(out)
		std.SetLevel(lvl)
		std.SetFormatter(fmtr)
		std.SetReportCaller(caller)
	})
}

func TestInit_LevelAndFormat(t *testing.T) {
	restore(t)
	if err := Init(Config{Format: "json", Level: "debug"}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if GetLevel() != DebugLevel {
		t.Fatalf("level = %v, want debug", GetLevel())
	}
	if _, ok := StandardLogger().Formatter.(*log.JSONFormatter); !ok {
		t.Fatalf("formatter = %T, want JSON", StandardLogger().Formatter)
	}
}

func TestInit_InvalidLevelFallsBack(t *testing.T) {
	restore(t)
	if err := Init(Config{Level: "loud"}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if GetLevel() != InfoLevel {
		t.Fatalf("level = %v, want info", GetLevel())
	}
}

func TestInit_FileOutput(t *testing.T) {
	restore(t)
	dir := t.TempDir()
	err := Init(Config{Level: "info", File: FileConfig{Enabled: true, Dir: dir, Filename: "t"}})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	WithField("test", t.Name()).Error("hello")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("no log file written in %s", dir)
	}
}

func TestWithTrace(t *testing.T) {
	if _, ok := WithTrace(context.Background()).Data["trace_id"]; ok {
		t.Fatalf("trace_id must be absent without a span context")
	}

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01, 0x02},
		SpanID:  trace.SpanID{0x03},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)
	got := WithTrace(ctx).Data["trace_id"]
	if got != sc.TraceID().String() {
		t.Fatalf("trace_id = %v, want %s", got, sc.TraceID())
	}
}
