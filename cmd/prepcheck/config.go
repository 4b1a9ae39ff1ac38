// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings of a prepcheck run. Flags set on the command line
// take precedence over PREPCHECK_* environment variables, which take
// precedence over the TOML configuration file.
type Config struct {
	// Target is the path to the file holding the target geometry. The file
	// must hold exactly one geometry. The path can include environment
	// variables.
	Target string `mapstructure:"target"`

	// Tests is the path to the file holding the test geometries, or "-" for
	// standard input. The path can include environment variables.
	Tests string `mapstructure:"tests"`

	// Predicates are the names of the predicates to evaluate, for example
	// "contains" or "covered-by".
	Predicates []string `mapstructure:"predicates"`

	// Format is the input format of both files: "wkt" (one geometry per
	// line) or "geojson".
	Format string `mapstructure:"format"`

	// Workers is the number of test geometries evaluated concurrently.
	Workers int `mapstructure:"workers"`

	// LogLevel is the logrus level name, for example "debug" or "warn".
	LogLevel string `mapstructure:"log_level"`

	// EagerIndexes builds the target indexes before the first test instead
	// of on first use.
	EagerIndexes bool `mapstructure:"eager_indexes"`

	// NoRectangle disables the rectangle fast path.
	NoRectangle bool `mapstructure:"no_rectangle"`
}

// DefaultConfig returns the configuration used when neither a file nor a
// flag sets a value.
func DefaultConfig() *Config {
	return &Config{
		Tests:      "-",
		Predicates: []string{"intersects"},
		Format:     formatWKT,
		Workers:    runtime.NumCPU(),
		LogLevel:   logrus.InfoLevel.String(),
	}
}

// configKey maps a flag name to its configuration key, so that the
// --log-level flag and the log_level file key set the same value.
func configKey(flagName string) string {
	return strings.ReplaceAll(flagName, "-", "_")
}

// LoadConfig layers the flags in fs over the environment and the TOML file
// at path. Every flag except --config is bound, and its default is used when
// no other source sets the key. An empty path skips the file. Keys that no
// Config field accepts are rejected.
func LoadConfig(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PREPCHECK")
	v.AutomaticEnv()

	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == "config" {
			return
		}
		err = v.BindPFlag(configKey(f.Name), f)
	})
	if err != nil {
		return nil, errors.Wrap(err, "prepcheck: binding flags")
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "prepcheck: reading configuration file %s", path)
		}
	}

	cfg := new(Config)
	if err := v.UnmarshalExact(cfg); err != nil {
		return nil, errors.Wrap(err, "prepcheck: configuration")
	}
	cfg.Target = os.ExpandEnv(cfg.Target)
	cfg.Tests = os.ExpandEnv(cfg.Tests)
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Target == "" {
		return errors.New("prepcheck: no target geometry file given")
	}
	if c.Tests == "" {
		return errors.New("prepcheck: no test geometry file given")
	}
	switch c.Format {
	case formatWKT, formatGeoJSON:
	default:
		return errors.Errorf("prepcheck: unknown format %q", c.Format)
	}
	if len(c.Predicates) == 0 {
		return errors.New("prepcheck: no predicates given")
	}
	for _, name := range c.Predicates {
		if _, err := lookupPredicate(name); err != nil {
			return err
		}
	}
	if c.Workers < 1 {
		return errors.Errorf("prepcheck: workers must be at least 1, got %d", c.Workers)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "prepcheck")
	}
	return nil
}
