/*
 * directive.go, part of goPlumed.
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

package plumed

import (
	"fmt"
	"strconv"
	"strings"
)

// The directive types below render one line of a PLUMED script each. The
// field order of every line is fixed, the engine parses it as such.

// TorsionDef declares a dihedral CV:
//
//	<Label>: TORSION ATOMS=a1,a2,a3,a4
type TorsionDef struct {
	Label string
	Atoms [4]int
}

func (d TorsionDef) String() string {
	return fmt.Sprintf("%s: TORSION ATOMS=%s", d.Label, joinInts(d.Atoms[:]))
}

// DistanceDef declares a distance CV:
//
//	<Label>: DISTANCE ATOMS=a1,a2
type DistanceDef struct {
	Label string
	Atoms [2]int
}

func (d DistanceDef) String() string {
	return fmt.Sprintf("%s: DISTANCE ATOMS=%s", d.Label, joinInts(d.Atoms[:]))
}

// Stage is one point of a moving restraint schedule.
type Stage struct {
	Step  int64
	At    float64
	Kappa float64
}

// MovingRestraintDef declares a harmonic restraint on the CV Arg whose
// target and spring constant change linearly between the stages:
//
//	<Label>: MOVINGRESTRAINT ARG=<Arg> STEP0= AT0= KAPPA0= STEP1= AT1= KAPPA1= STEP2= AT2= KAPPA2=
type MovingRestraintDef struct {
	Label  string
	Arg    string
	Stages [3]Stage
}

func (d MovingRestraintDef) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: MOVINGRESTRAINT ARG=%s", d.Label, d.Arg)
	for i, s := range d.Stages {
		fmt.Fprintf(&b, " STEP%d=%d AT%d=%s KAPPA%d=%s", i, s.Step, i, formatReal(s.At), i, formatReal(s.Kappa))
	}
	return b.String()
}

// PrintDef declares the periodic output of the values in Args:
//
//	PRINT STRIDE=<Stride> ARG=<a,b,...> FILE=<File>
type PrintDef struct {
	Stride int
	Args   []string
	File   string
}

func (d PrintDef) String() string {
	return fmt.Sprintf("PRINT STRIDE=%d ARG=%s FILE=%s", d.Stride, strings.Join(d.Args, ","), d.File)
}

// WholeMoleculesDef asks the engine to rebuild the molecule made of the
// given atoms across periodic boundaries before computing any CV:
//
//	WHOLEMOLECULES ENTITY0=<i,j,...>
type WholeMoleculesDef struct {
	Entity []int
}

func (d WholeMoleculesDef) String() string {
	return "WHOLEMOLECULES ENTITY0=" + joinInts(d.Entity)
}

func joinInts(ints []int) string {
	s := make([]string, len(ints))
	for i, v := range ints {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, ",")
}

// formatReal writes v with the shortest representation that round-trips,
// always with a decimal point (1 is written 1.0).
func formatReal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
