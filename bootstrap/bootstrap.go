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

// Package bootstrap wires configuration into the process-wide logger and
// error queue.
package bootstrap

import (
	"fmt"

	"dirpx.dev/sslerr/config"
	"dirpx.dev/sslerr/errqueue"
	log "dirpx.dev/sslerr/logger"
)

// Init configures logging and installs a fresh default error queue sized
// from cfg. A nil cfg is loaded from the environment. The installed queue
// is returned so callers can drain it.
func Init(cfg *config.Config) (*errqueue.Stack, error) {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyDefaults()

	if err := log.Init(cfg.Log); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	q := errqueue.New(errqueue.WithDepth(cfg.Queue.Depth))
	errqueue.SetDefault(q)

	log.WithFields(log.Fields{
		"queue_depth": cfg.Queue.Depth,
		"log_level":   cfg.Log.Level,
	}).Debug("error bridge initialised")
	return q, nil
}
