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

import "dirpx.dev/sslerr/logger"

// Config is the root configuration.
type Config struct {
	Log   logger.Config `yaml:"log" mapstructure:"log"`
	Queue QueueConfig   `yaml:"queue" mapstructure:"queue"`
}

// QueueConfig sizes the process-wide error queue.
type QueueConfig struct {
	// Depth is the number of records kept before the oldest is dropped.
	Depth int `yaml:"depth" mapstructure:"depth"`
}
