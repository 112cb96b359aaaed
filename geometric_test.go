/*
 * geometric_test.go, part of goPlumed.
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

package chem

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestDihedral(Te *testing.T) {
	a := r3.Vec{X: 1, Y: 0, Z: 0}
	b := r3.Vec{X: 0, Y: 0, Z: 0}
	c := r3.Vec{X: 0, Y: 0, Z: 1}
	cases := []struct {
		d    r3.Vec
		want float64
	}{
		{r3.Vec{X: 1, Y: 0, Z: 1}, 0},
		{r3.Vec{X: 0, Y: 1, Z: 1}, 90},
		{r3.Vec{X: -1, Y: 0, Z: 1}, 180},
		{r3.Vec{X: 0, Y: -1, Z: 1}, -90},
	}
	for _, v := range cases {
		got := Dihedral(a, b, c, v.d) * 180 / math.Pi
		if math.Abs(got-v.want) > 1e-9 {
			Te.Errorf("Dihedral with d=%v: got %f, want %f", v.d, got, v.want)
		}
	}
}

func TestDistance(Te *testing.T) {
	if d := Distance(r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 4, Y: 6, Z: 3}); math.Abs(d-5) > 1e-12 {
		Te.Errorf("expected 5, got %f", d)
	}
}
