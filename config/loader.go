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

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "SSLERR"
	// ConfigName is the config file name without extension.
	ConfigName = "sslerr"
)

// ErrInvalidDepth is returned when queue.depth is negative.
var ErrInvalidDepth = errors.New("config: queue depth must not be negative")

// LoadOptions tunes Load.
type LoadOptions struct {
	ConfigPath string // directory searched for sslerr.yaml, default "."
	EnvFile    string // dotenv file, default $SSLERR_ENV_FILE or ".env"
}

// Load reads the configuration. A missing config file or dotenv file is
// not an error.
func Load(opts ...LoadOptions) (*Config, error) {
	opt := LoadOptions{ConfigPath: "."}
	if len(opts) > 0 {
		opt = opts[0]
		if opt.ConfigPath == "" {
			opt.ConfigPath = "."
		}
	}

	envFile := opt.EnvFile
	if envFile == "" {
		envFile = os.Getenv(EnvPrefix + "_ENV_FILE")
	}
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s failed: %w", envFile, err)
	}

	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(opt.ConfigPath)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about.
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.report_caller", false)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.dir", "")
	v.SetDefault("log.file.filename", "")
	v.SetDefault("log.file.max_age_days", 0)
	v.SetDefault("log.file.rotation_days", 0)
	v.SetDefault("queue.depth", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}
	if cfg.Queue.Depth < 0 {
		return nil, ErrInvalidDepth
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}
