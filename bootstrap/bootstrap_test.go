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

package bootstrap

import (
	"testing"

	"dirpx.dev/sslerr"
	"dirpx.dev/sslerr/config"
	"dirpx.dev/sslerr/errqueue"
	log "dirpx.dev/sslerr/logger"
)

func TestInit_InstallsQueue(t *testing.T) {
	prev := errqueue.SetDefault(nil)
	level := log.GetLevel()
	t.Cleanup(func() {
		errqueue.SetDefault(prev)
		log.SetLevel(level)
	})

	cfg := &config.Config{Queue: config.QueueConfig{Depth: 2}}
	q, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if errqueue.Default() != errqueue.Sink(q) {
		t.Fatalf("Init must install the returned queue as default")
	}
	if cfg.Log.Level != config.DefaultLogLevel {
		t.Fatalf("defaults not applied: %+v", cfg.Log)
	}

	for i := 0; i < 3; i++ {
		sslerr.NullPointer().Raise()
	}
	if q.Len() != 2 {
		t.Fatalf("queue Len = %d, want configured depth 2", q.Len())
	}
}

func TestInit_DebugLevel(t *testing.T) {
	prev := errqueue.SetDefault(nil)
	level := log.GetLevel()
	t.Cleanup(func() {
		errqueue.SetDefault(prev)
		log.SetLevel(level)
	})

	cfg := &config.Config{}
	cfg.Log.Level = "debug"
	if _, err := Init(cfg); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if log.GetLevel() != log.DebugLevel {
		t.Fatalf("level = %v, want debug", log.GetLevel())
	}
}
