/*
 * cmd_colvar.go, part of goPlumed.
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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rmera/goplumed/chemplot"
	"github.com/rmera/goplumed/colvar"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	plotCVs   []string
	ramaResid int
	plotOut   string
	csvOut    string
)

var plotCmd = &cobra.Command{
	Use:   "plot COLVAR",
	Short: "Plot the CVs printed by PLUMED",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlot,
}

var csvCmd = &cobra.Command{
	Use:   "csv COLVAR",
	Short: "Convert the output of PLUMED to CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runCSV,
}

func runPlot(cmd *cobra.Command, args []string) error {
	d, err := colvar.ReadFile(args[0])
	if err != nil {
		return err
	}
	title := filepath.Base(args[0])
	if ramaResid > 0 {
		err = chemplot.RamaPlot(d, ramaResid, fmt.Sprintf("%s, residue %d", title, ramaResid), plotOut)
	} else {
		err = chemplot.CVPlot(d, plotCVs, title, plotOut)
	}
	if err != nil {
		return err
	}
	logger.Info("plot written", zap.String("file", plotOut+".png"), zap.Int("frames", len(d.Rows)))
	return nil
}

func runCSV(cmd *cobra.Command, args []string) error {
	d, err := colvar.ReadFile(args[0])
	if err != nil {
		return err
	}
	var w io.Writer = cmd.OutOrStdout()
	if csvOut != "" {
		f, err := os.Create(csvOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := d.WriteCSV(w); err != nil {
		return err
	}
	logger.Debug("csv written", zap.Int("fields", len(d.Fields)), zap.Int("frames", len(d.Rows)))
	return nil
}
