/*
 * plot_test.go, part of goPlumed.
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

package chemplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/goplumed/colvar"
)

func testData() *colvar.Data {
	d := &colvar.Data{Fields: []string{"time", "dih-002-0", "dih-002-1", "dis-1-10"}}
	for i := 0; i < 50; i++ {
		t := float64(i) * 0.2
		d.Rows = append(d.Rows, []float64{t, -math.Pi/2 + t/10, math.Pi/2 - t/10, 0.9 + t/50})
	}
	return d
}

func TestCVPlot(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "cvs")
	if err := CVPlot(testData(), nil, "All CVs", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Error(err)
	}
	if err := CVPlot(testData(), []string{"dis-3-4"}, "Missing", name); err == nil {
		Te.Error("expected an error for a missing CV")
	}
}

func TestRamaPlot(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "rama")
	if err := RamaPlot(testData(), 2, "Residue 2", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Error(err)
	}
	if err := RamaPlot(testData(), 3, "Residue 3", name); err == nil {
		Te.Error("expected an error for a residue with no torsion CVs")
	}
}

func TestColors(Te *testing.T) {
	seen := make(map[[3]uint8]bool)
	for i := 0; i < 5; i++ {
		c := colors(i, 5)
		if c.A != 255 {
			Te.Errorf("color %d is not opaque", i)
		}
		seen[[3]uint8{c.R, c.G, c.B}] = true
	}
	if len(seen) != 5 {
		Te.Errorf("expected 5 different colors, got %d", len(seen))
	}
}
