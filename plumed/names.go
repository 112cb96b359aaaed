/*
 * names.go, part of goPlumed.
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

import "fmt"

// angleKinds are the backbone dihedrals a torsion CV can be built on. The
// position of each kind is the angle index used in CV names.
var angleKinds = [...]string{"phi", "psi"}

// AngleKinds returns the angle kinds a torsion CV can be built on, in the
// order of their angle index.
func AngleKinds() []string {
	return append([]string(nil), angleKinds[:]...)
}

// AngleIndex returns the index of the angle kind, or -1 if kind is not in AngleKinds.
func AngleIndex(kind string) int {
	for i, v := range angleKinds {
		if v == kind {
			return i
		}
	}
	return -1
}

// TorsionName returns the name of the CV for the angid-th angle of residue resid.
func TorsionName(resid, angid int) string {
	return fmt.Sprintf("dih-%03d-%d", resid, angid)
}

// DistanceName returns the name of the CV for the distance between 2 atoms.
func DistanceName(atomid1, atomid2 int) string {
	return fmt.Sprintf("dis-%d-%d", atomid1, atomid2)
}

// RestraintName returns the name of the restraint acting on the CV cv.
func RestraintName(cv string) string {
	return "res-" + cv
}

// BiasChannel returns the name of the squared deviation output of a restraint.
func BiasChannel(restraint string) string {
	return restraint + ".force2"
}
