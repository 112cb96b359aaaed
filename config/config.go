/*
 * config.go, part of goPlumed.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goPlumed is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

// Package config reads and writes the YAML description of the CVs and
// restraints of a labeling run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmera/goplumed/plumed"
	"gopkg.in/yaml.v3"
)

// Config holds the settings needed to build the PLUMED script of a task.
type Config struct {
	// CV source: torsion, distance or custom
	Mode           string   `yaml:"mode"`
	SelectedResid  []int    `yaml:"selected_resid,omitempty"`
	SelectedAtomID [][]int  `yaml:"selected_atomid,omitempty"`
	CVFile         []string `yaml:"cv_file,omitempty"`
	Chains         string   `yaml:"chains,omitempty"`

	// Moving restraints. Kappa, At, Step and Final take a number or a list
	// with one number per CV.
	Restrained bool  `yaml:"restrained"`
	Kappa      Param `yaml:"kappa"`
	At         Param `yaml:"at"`
	Step       Param `yaml:"step"`
	Final      Param `yaml:"final"`
	NSteps     int64 `yaml:"nsteps"`

	// PRINT directive
	Stride int    `yaml:"stride"`
	Output string `yaml:"output"`

	// Atoms to make whole across periodic boundaries, 1-based.
	WholeMolecules []int `yaml:"whole_molecules,omitempty"`

	// Files inside each task directory
	ConfName   string `yaml:"conf_name"`
	PlumedName string `yaml:"plumed_name"`

	// Number of tasks assembled at the same time
	Workers int `yaml:"workers"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the logger of the command line tool.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Param is a number or a list of numbers in the YAML file.
type Param struct {
	plumed.Value
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Param) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := node.Decode(&v); err != nil {
			return err
		}
		p.Value = plumed.Scalar(v)
	case yaml.SequenceNode:
		var v []float64
		if err := node.Decode(&v); err != nil {
			return err
		}
		p.Value = plumed.Seq(v...)
	default:
		return fmt.Errorf("line %d: expected a number or a list of numbers", node.Line)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Param) MarshalYAML() (interface{}, error) {
	if p.IsSeq() {
		return p.Values(), nil
	}
	return p.Scalar(), nil
}

// DefaultConfig returns the configuration with the default values.
func DefaultConfig() *Config {
	sched := plumed.DefaultSchedule()
	out := plumed.DefaultOutput()
	return &Config{
		Mode:       plumed.TorsionMode.String(),
		Restrained: false,
		Kappa:      Param{sched.Kappa},
		At:         Param{sched.At},
		Step:       Param{sched.Step},
		Final:      Param{sched.Final},
		NSteps:     sched.NSteps,
		Stride:     out.Stride,
		Output:     out.File,
		ConfName:   "conf.pdb",
		PlumedName: "plumed.dat",
		Workers:    4,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration in path over the default one, applies the
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// applyEnvOverrides applies the environment variables that take
// precedence over the file. LOGLEVEL sets the logging level.
func (c *Config) applyEnvOverrides() {
	if lvl := os.Getenv("LOGLEVEL"); lvl != "" {
		c.Logging.Level = strings.ToLower(lvl)
	}
}

// Validate checks the values that can be checked without knowing the CVs.
// Lengths of per-CV lists are checked when the script is assembled.
func (c *Config) Validate() error {
	mode, err := plumed.ParseMode(c.Mode)
	if err != nil {
		return err
	}
	switch mode {
	case plumed.TorsionMode:
		if len(c.SelectedResid) == 0 {
			return fmt.Errorf("torsion mode needs selected_resid")
		}
	case plumed.DistanceMode:
		if len(c.SelectedAtomID) == 0 {
			return fmt.Errorf("distance mode needs selected_atomid")
		}
	case plumed.CustomMode:
		if len(c.CVFile) == 0 {
			return fmt.Errorf("custom mode needs cv_file")
		}
	}
	if c.Stride <= 0 {
		return fmt.Errorf("stride must be positive, got %d", c.Stride)
	}
	if c.Output == "" || c.PlumedName == "" {
		return fmt.Errorf("output and plumed_name can't be empty")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	return nil
}

// Source returns the CV source for the task in dir. The structure is
// dir/ConfName, and relative custom files are taken from dir.
func (c *Config) Source(dir string) (plumed.Source, error) {
	mode, err := plumed.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	conf := filepath.Join(dir, c.ConfName)
	switch mode {
	case plumed.TorsionMode:
		return plumed.Torsion{Conf: conf, Residues: c.SelectedResid}, nil
	case plumed.DistanceMode:
		return plumed.Distance{Conf: conf, Pairs: c.SelectedAtomID}, nil
	case plumed.CustomMode:
		files := make([]string, len(c.CVFile))
		for i, f := range c.CVFile {
			if !filepath.IsAbs(f) {
				f = filepath.Join(dir, f)
			}
			files[i] = f
		}
		return plumed.Custom{Files: files}, nil
	}
	return nil, fmt.Errorf("mode %s has no source", mode)
}

// Schedule returns the moving restraint parameters.
func (c *Config) Schedule() plumed.Schedule {
	return plumed.Schedule{
		Kappa:  c.Kappa.Value,
		At:     c.At.Value,
		Step:   c.Step.Value,
		Final:  c.Final.Value,
		NSteps: c.NSteps,
	}
}

// Print returns the settings of the PRINT directive.
func (c *Config) Print() plumed.Output {
	return plumed.Output{Stride: c.Stride, File: c.Output}
}
