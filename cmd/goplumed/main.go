/*
 * main.go, part of goPlumed.
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

// Command goplumed writes the PLUMED scripts that define and restrain the
// collective variables of MD runs, and reads back what PLUMED prints.
package main

import (
	"fmt"
	"os"
	"strings"

	chem "github.com/rmera/goplumed"
	"github.com/rmera/goplumed/config"
	"github.com/rmera/goplumed/plumed"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "goplumed",
	Short: "Build PLUMED scripts for CV labeling and staged restraints",
	Long: `goplumed writes PLUMED input files that declare collective variables
(backbone torsions, interatomic distances, or a user-given script) and,
optionally, put a 3-stage moving restraint on each of them.

The settings are read from a YAML file (see --config).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if env := os.Getenv("LOGLEVEL"); env != "" {
			level = strings.ToLower(env)
		}
		var err error
		logger, err = newLogger(config.LoggingConfig{Level: level})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// newLogger builds the logger for lc. --verbose always wins.
func newLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	lvl, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// loadConfig reads the configuration file and rebuilds the logger with its
// settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	l, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		_ = logger.Sync()
	}
	logger = l
	logger.Debug("configuration loaded", zap.String("path", cfgPath), zap.String("mode", cfg.Mode))
	return cfg, nil
}

// newAssembler returns the assembler described by cfg.
func newAssembler(cfg *config.Config) *plumed.Assembler {
	var opts []plumed.Option
	if len(cfg.WholeMolecules) > 0 {
		opts = append(opts, plumed.WithWholeMolecules(cfg.WholeMolecules))
	}
	return plumed.NewAssembler(chem.Resolver{Chains: cfg.Chains}, logger, opts...)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "goplumed.yaml", "Configuration file")

	makeCmd.Flags().StringVar(&confFile, "conf", "", "Build the script for this structure only and print it")
	namesCmd.Flags().BoolVar(&showValues, "values", false, "Also print the current value of each CV")
	plotCmd.Flags().StringSliceVar(&plotCVs, "cv", nil, "CVs to plot (default all)")
	plotCmd.Flags().IntVar(&ramaResid, "rama", 0, "Plot the phi/psi trajectory of this residue instead")
	plotCmd.Flags().StringVarP(&plotOut, "output", "o", "colvar", "Name of the PNG file, without extension")
	csvCmd.Flags().StringVarP(&csvOut, "output", "o", "", "CSV file (default standard output)")

	rootCmd.AddCommand(makeCmd, namesCmd, plotCmd, csvCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
