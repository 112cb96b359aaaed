/*
 * cmd_make.go, part of goPlumed.
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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	chem "github.com/rmera/goplumed"
	"github.com/rmera/goplumed/batch"
	"github.com/rmera/goplumed/plumed"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var confFile string

var makeCmd = &cobra.Command{
	Use:   "make [task dirs...]",
	Short: "Write the PLUMED script of each task directory",
	Long: `For each task directory, reads the structure named conf_name in the
configuration and writes the script to plumed_name in the same directory.
With --conf, the script for that structure is printed instead.`,
	RunE: runMake,
}

func runMake(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	R := batch.New(cfg, newAssembler(cfg), logger)
	if confFile != "" {
		cfg.ConfName = filepath.Base(confFile)
		script, names, err := R.Assemble(filepath.Dir(confFile))
		if err != nil {
			return err
		}
		logger.Info("script assembled", zap.Strings("cvs", names))
		fmt.Fprintln(cmd.OutOrStdout(), script)
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("give at least one task directory, or --conf")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	results, err := R.Run(ctx, args)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintln(cmd.OutOrStdout(), r.Path)
	}
	return nil
}

var showValues bool

var namesCmd = &cobra.Command{
	Use:   "names [task dir]",
	Short: "Print the names of the CVs of a task",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNames,
}

func runNames(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	src, err := cfg.Source(dir)
	if err != nil {
		return err
	}
	names, err := newAssembler(cfg).Names(src)
	if err != nil {
		return err
	}
	if !showValues {
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	}
	values, err := cvValues(cfg.Chains, src)
	if err != nil {
		return err
	}
	for _, n := range names {
		if v, ok := values[n]; ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %.4f\n", n, v)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
	}
	return nil
}

// cvValues returns the value of each CV of src in the first frame of its
// structure: degrees for torsions, nm for distances. Custom CVs have none.
func cvValues(chains string, src plumed.Source) (map[string]float64, error) {
	r := chem.Resolver{Chains: chains}
	ret := make(map[string]float64)
	switch s := src.(type) {
	case plumed.Torsion:
		frames, err := r.DihedralValues(s.Conf, s.Residues)
		if err != nil {
			return nil, err
		}
		for resid, angles := range frames[0] {
			for i := range plumed.AngleKinds() {
				ret[plumed.TorsionName(resid, i)] = angles[i]
			}
		}
	case plumed.Distance:
		dists, err := r.Distances(s.Conf, s.Pairs)
		if err != nil {
			return nil, err
		}
		for _, p := range s.Pairs {
			ret[plumed.DistanceName(p[0], p[1])] = dists[fmt.Sprintf("%d %d", p[0], p[1])]
		}
	}
	return ret, nil
}
