/*
 * chem.go, part of goPlumed.
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
	"fmt"

	v3 "github.com/rmera/goplumed/v3"
)

// Atom contains the per-atom information read from a structure file, except
// for the coordinates, which are kept in a v3.Matrix.
type Atom struct {
	Name    string
	ID      int //the serial number in the file, not necessarily index+1
	MolName string
	MolID   int
	Chain   string
	Symbol  string
	Het     bool //is hetatm in the pdb file?
}

/*****Topology type***/

// Topology contains the information about a molecule which is not expected
// to change in time (i.e. everything except for coordinates).
type Topology struct {
	Atoms []*Atom
}

// NewTopology returns a topology with the given atoms. It returns error if
// ats is nil.
func NewTopology(ats []*Atom) (*Topology, error) {
	if ats == nil {
		return nil, &CError{"Supplied a nil atom slice", []string{"NewTopology"}}
	}
	return &Topology{Atoms: ats}, nil
}

// Atom returns the Atom corresponding to the index i
// of the Atom slice in the Topology. Panics if
// out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic(fmt.Sprintf("Topology: Requested Atom %d out of range", i))
	}
	return T.Atoms[i]
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

/**Type Molecule**/

// Molecule contains all the info for a molecule in many states. The
// coordinates are in A, one v3.Matrix per frame.
type Molecule struct {
	*Topology
	Coords []*v3.Matrix
}

// NewMolecule makes a molecule with the given topology and coordinates. It
// checks that every frame has one vector per atom.
func NewMolecule(top *Topology, coords []*v3.Matrix) (*Molecule, error) {
	if top == nil || len(coords) == 0 {
		return nil, &CError{string(ErrNilData), []string{"NewMolecule"}}
	}
	for i, c := range coords {
		if c == nil || c.NVecs() != top.Len() {
			return nil, &CError{fmt.Sprintf("Frame %d doesn't have one vector for each of the %d atoms", i, top.Len()), []string{"NewMolecule"}}
		}
	}
	return &Molecule{Topology: top, Coords: coords}, nil
}

