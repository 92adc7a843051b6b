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
	"flag"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirpx.dev/sslerr/lib"
	"dirpx.dev/sslerr/reason"
)

var update = flag.Bool("update", false, "update golden files")

// TestExplain_Golden verifies Explain() output is stable and human-friendly.
// Update golden with: go test ./mapper -run Explain_Golden -update
func TestExplain_Golden(t *testing.T) {
	m, err := New(
		WithHTTPOverride(lib.SSL, reason.Unsupported, http.StatusTeapot),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var b strings.Builder

	// Case 1: HTTP override, gRPC reason default
	b.WriteString(m.Explain(lib.SSL, reason.Unsupported))
	b.WriteString("\n---\n")

	// Case 2: built-in pair override
	b.WriteString(m.Explain(lib.User, reason.OperationFailed))
	b.WriteString("\n---\n")

	// Case 3: nothing matches
	b.WriteString(m.Explain(lib.Lib(99), reason.Reason(5)))
	b.WriteString("\n")

	got := b.String()

	goldenPath := filepath.Join("testdata", "explain.golden")
	if *update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
			t.Fatalf("mkdir testdata: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		t.Logf("updated %s", goldenPath)
		return
	}

	wantBytes, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v (run with -update to create)", err)
	}
	want := string(wantBytes)

	// normalize trailing newlines to avoid EOF newline mismatches
	normalize := func(s string) string { return strings.TrimRight(s, "\r\n") }

	if normalize(want) != normalize(got) {
		t.Fatalf("Explain() output mismatch.\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}
