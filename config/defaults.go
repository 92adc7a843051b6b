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

package config

import "dirpx.dev/sslerr/errqueue"

// Default values.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Log.File.Enabled {
		if c.Log.File.Dir == "" {
			c.Log.File.Dir = "logs"
		}
		if c.Log.File.Filename == "" {
			c.Log.File.Filename = "sslerr"
		}
		if c.Log.File.MaxAgeDays <= 0 {
			c.Log.File.MaxAgeDays = 7
		}
		if c.Log.File.RotationDays <= 0 {
			c.Log.File.RotationDays = 1
		}
	}
	c.Queue.ApplyDefaults()
}

// ApplyDefaults fills zero values.
func (q *QueueConfig) ApplyDefaults() {
	if q.Depth <= 0 {
		q.Depth = errqueue.DefaultDepth
	}
}
