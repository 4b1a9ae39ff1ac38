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
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"

	"github.com/akhenakh/geo/planar"
)

// app holds the state shared by the prepcheck commands.
type app struct {
	configFile string
	cfg        *Config
	log        *logrus.Logger
	stdin      io.Reader
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}
	defaults := DefaultConfig()

	root := &cobra.Command{
		Use:   "prepcheck",
		Short: "Evaluate spatial predicates against a prepared geometry.",
		Long: `prepcheck prepares a target geometry once and evaluates spatial
predicates (contains, covers, intersects, ...) against every geometry read
from a WKT or GeoJSON file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			a.stdin = cmd.InOrStdin()
			a.log.SetOutput(cmd.ErrOrStderr())
			return a.startup(cmd)
		},
	}

	fs := root.PersistentFlags()
	fs.StringVar(&a.configFile, "config", "", "TOML configuration file location")
	fs.String("target", defaults.Target, "file holding the target geometry")
	fs.String("tests", defaults.Tests, `file holding the test geometries, "-" for standard input`)
	fs.StringSlice("predicates", defaults.Predicates, "predicates to evaluate: "+strings.Join(knownPredicates(), ", "))
	fs.String("format", defaults.Format, "input format: wkt or geojson")
	fs.Int("workers", defaults.Workers, "number of test geometries evaluated concurrently")
	fs.String("log-level", defaults.LogLevel, "logging level")
	fs.Bool("eager-indexes", defaults.EagerIndexes, "build the target indexes before the first test")
	fs.Bool("no-rectangle", defaults.NoRectangle, "disable the rectangle fast path")

	root.AddCommand(a.evalCmd(), a.filterCmd(), a.relateCmd())
	return root
}

// startup merges the configuration file with the command line flags.
func (a *app) startup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configFile, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "prepcheck")
	}
	a.log.SetLevel(level)
	a.cfg = cfg
	return nil
}

// load reads and prepares the target, and reads the tests.
func (a *app) load() (*planar.PreparedGeometry, []geom.T, error) {
	targets, err := readGeometryFile(a.cfg.Target, a.cfg.Format, a.stdin)
	if err != nil {
		return nil, nil, err
	}
	if len(targets) != 1 {
		return nil, nil, errors.Errorf("prepcheck: %s holds %d geometries, want 1", a.cfg.Target, len(targets))
	}
	tests, err := readGeometryFile(a.cfg.Tests, a.cfg.Format, a.stdin)
	if err != nil {
		return nil, nil, err
	}

	opts := planar.NewPrepareOptions()
	opts.Logger = a.log
	opts.EagerIndexes = a.cfg.EagerIndexes
	opts.RectangleFastPath = !a.cfg.NoRectangle
	target := planar.Prepare(targets[0], &opts)

	a.log.WithFields(logrus.Fields{
		"kind":      target.Kind(),
		"rectangle": target.IsRectangle(),
		"envelope":  target.Envelope(),
		"tests":     len(tests),
	}).Info("prepared target")
	return target, tests, nil
}

func (a *app) run(cmd *cobra.Command) ([]geom.T, []Result, error) {
	target, tests, err := a.load()
	if err != nil {
		return nil, nil, err
	}
	start := time.Now()
	results, err := evaluate(cmd.Context(), target, tests, a.cfg.Predicates, a.cfg.Workers)
	if err != nil {
		return nil, nil, err
	}
	a.log.WithFields(logrus.Fields{
		"predicates": a.cfg.Predicates,
		"workers":    a.cfg.Workers,
		"elapsed":    time.Since(start),
	}).Info("evaluated predicates")
	return tests, results, nil
}

func (a *app) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval",
		Short: "Print the value of every predicate for every test geometry.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, results, err := a.run(cmd)
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), a.cfg.Predicates, results)
		},
	}
}

func (a *app) filterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter",
		Short: "Print the test geometries for which every predicate holds.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tests, results, err := a.run(cmd)
			if err != nil {
				return err
			}
			var kept []geom.T
			for _, r := range results {
				if r.All() {
					kept = append(kept, tests[r.Index])
				}
			}
			a.log.WithField("kept", len(kept)).Debug("filtered tests")
			return writeGeometries(cmd.OutOrStdout(), kept, a.cfg.Format)
		},
	}
}

func (a *app) relateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relate",
		Short: "Print the DE-9IM matrix of the target and every test geometry.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, tests, err := a.load()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 1, ' ', 0)
			fmt.Fprintln(tw, "index\tmatrix")
			for i, test := range tests {
				m, err := planar.Relate(target.Geometry(), test)
				if err != nil {
					return errors.Wrapf(err, "prepcheck: test %d", i)
				}
				fmt.Fprintf(tw, "%d\t%s\n", i, m)
			}
			return errors.Wrap(tw.Flush(), "prepcheck")
		},
	}
}

// writeResults writes a table with one row per test geometry and one column
// per predicate.
func writeResults(w io.Writer, names []string, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintf(tw, "index\t%s\n", strings.Join(names, "\t"))
	for _, r := range results {
		fmt.Fprintf(tw, "%d", r.Index)
		for _, v := range r.Values {
			fmt.Fprintf(tw, "\t%t", v)
		}
		fmt.Fprintln(tw)
	}
	return errors.Wrap(tw.Flush(), "prepcheck")
}
