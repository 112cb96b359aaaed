/*
 * cvplot.go, part of goPlumed.
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

// Package chemplot draws the CVs printed by PLUMED.
package chemplot

import (
	"fmt"
	"math"

	"github.com/rmera/goplumed/colvar"
	"github.com/rmera/goplumed/plumed"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// CVPlot plots the time series of the fields names of d against its first
// field (the time), and saves it as plotname.png. If names is empty, every
// field but the first one is plotted.
func CVPlot(d *colvar.Data, names []string, title, plotname string) error {
	if d == nil || len(d.Fields) < 2 {
		return fmt.Errorf("CVPlot: nothing to plot")
	}
	if len(names) == 0 {
		names = d.Fields[1:]
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = d.Fields[0]
	p.Y.Label.Text = "CV"
	p.Add(plotter.NewGrid())
	time := make([]float64, len(d.Rows))
	for i, row := range d.Rows {
		time[i] = row[0]
	}
	for key, name := range names {
		vals, err := d.Column(name)
		if err != nil {
			return fmt.Errorf("CVPlot: %w", err)
		}
		pts := make(plotter.XYs, len(vals))
		for i, v := range vals {
			pts[i].X = time[i]
			pts[i].Y = v
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("CVPlot: %s: %w", name, err)
		}
		l.LineStyle.Width = vg.Points(1)
		l.LineStyle.Color = colors(key, len(names))
		p.Add(l)
		p.Legend.Add(name, l)
	}
	p.Legend.Top = true
	return p.Save(6*vg.Inch, 4*vg.Inch, plotname+".png")
}

func basicRamaPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Phi"
	p.Y.Label.Text = "Psi"
	//Constant axes
	p.X.Min = -180
	p.X.Max = 180
	p.Y.Min = -180
	p.Y.Max = 180
	p.Add(plotter.NewGrid())
	return p
}

// RamaPlot plots the phi/psi trajectory of the residue resid, from the
// torsion CVs of d, as plotname.png. The first and last points are
// marked with a pyramid and a square.
func RamaPlot(d *colvar.Data, resid int, title, plotname string) error {
	phi, err := d.Column(plumed.TorsionName(resid, plumed.AngleIndex("phi")))
	if err != nil {
		return fmt.Errorf("RamaPlot: %w", err)
	}
	psi, err := d.Column(plumed.TorsionName(resid, plumed.AngleIndex("psi")))
	if err != nil {
		return fmt.Errorf("RamaPlot: %w", err)
	}
	if len(phi) == 0 {
		return fmt.Errorf("RamaPlot: no frames")
	}
	p := basicRamaPlot(title)
	pts := make(plotter.XYs, len(phi))
	for i := range phi {
		pts[i].X = phi[i] * 180 / math.Pi
		pts[i].Y = psi[i] * 180 / math.Pi
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Radius = vg.Points(1.5)
	s.GlyphStyle.Color = colors(0, 1)
	p.Add(s)
	for tagged, i := range []int{0, len(pts) - 1} {
		m, err := plotter.NewScatter(pts[i : i+1])
		if err != nil {
			return err
		}
		m.GlyphStyle.Shape = getShape(tagged)
		m.GlyphStyle.Radius = vg.Points(4)
		m.GlyphStyle.Color = colors(tagged+1, 3)
		p.Add(m)
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, plotname+".png")
}

func getShape(tagged int) draw.GlyphDrawer {
	switch tagged {
	case 0:
		return draw.PyramidGlyph{}
	case 1:
		return draw.SquareGlyph{}
	default:
		return draw.RingGlyph{}
	}
}
