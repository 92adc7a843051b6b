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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	log "github.com/sirupsen/logrus"
)

// Config selects format, level and optional file output.
type Config struct {
	Format       string     `yaml:"format" mapstructure:"format"`
	Level        string     `yaml:"level" mapstructure:"level"`
	ReportCaller bool       `yaml:"report_caller" mapstructure:"report_caller"`
	File         FileConfig `yaml:"file" mapstructure:"file"`
}

// FileConfig enables a daily-rotated log file next to stderr output.
type FileConfig struct {
	Enabled      bool   `yaml:"enabled" mapstructure:"enabled"`
	Dir          string `yaml:"dir" mapstructure:"dir"`
	Filename     string `yaml:"filename" mapstructure:"filename"`
	MaxAgeDays   int    `yaml:"max_age_days" mapstructure:"max_age_days"`
	RotationDays int    `yaml:"rotation_days" mapstructure:"rotation_days"`
}

// Init configures the shared logger. An unknown level falls back to info
// with a warning instead of failing.
func Init(cfg Config) error {
	switch cfg.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{})
	}

	if lvl, err := log.ParseLevel(cfg.Level); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(log.InfoLevel)
		log.Warnf("invalid log level %q, fallback to info", cfg.Level)
	}

	log.SetReportCaller(cfg.ReportCaller)

	if cfg.File.Enabled {
		w, err := rotatingWriter(cfg.File)
		if err != nil {
			return err
		}
		log.SetOutput(io.MultiWriter(os.Stderr, w))
	}
	return nil
}

func rotatingWriter(fc FileConfig) (io.Writer, error) {
	dir := fc.Dir
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logger: create log dir: %w", err)
	}

	name := fc.Filename
	if name == "" {
		name = "sslerr"
	}
	maxAge := fc.MaxAgeDays
	if maxAge <= 0 {
		maxAge = 7
	}
	rotation := fc.RotationDays
	if rotation <= 0 {
		rotation = 1
	}

	w, err := rotatelogs.New(
		filepath.Join(dir, name+".%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(dir, name+".log")),
		rotatelogs.WithMaxAge(time.Duration(maxAge)*24*time.Hour),
		rotatelogs.WithRotationTime(time.Duration(rotation)*24*time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("logger: open rotating file: %w", err)
	}
	return w, nil
}
