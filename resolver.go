/*
 * resolver.go, part of goPlumed.
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
)

// Angle kinds recognized by Resolver.Dihedrals.
const (
	Phi = "phi"
	Psi = "psi"
)

// Resolver reads structure files and finds the atoms that define backbone
// dihedrals and interatomic distances. The atom indexes it returns are
// 1-based, as the bias engine expects. A Resolver holds no state between
// calls and can be used concurrently.
type Resolver struct {
	//Chains restricts the dihedral search to the given chain IDs. Empty means all chains.
	Chains string
}

// Dihedrals reads the structure in conf and returns, for each residue in resids
// that is present in the structure, the atoms defining its phi and psi angles.
// Terminal residues only get the angle they have.
func (R Resolver) Dihedrals(conf string, resids []int) (map[int]map[string][]int, error) {
	mol, err := FileRead(conf)
	if err != nil {
		return nil, errDecorate(err, "Resolver.Dihedrals")
	}
	if len(resids) == 0 {
		return map[int]map[string][]int{}, nil
	}
	sets, err := RamaList(mol, R.Chains, resids)
	if err != nil {
		return nil, errDecorate(err, "Resolver.Dihedrals")
	}
	oneBased := func(ids []int) []int {
		ret := make([]int, len(ids))
		for i, v := range ids {
			ret[i] = v + 1
		}
		return ret
	}
	ret := make(map[int]map[string][]int, len(sets))
	chainOf := make(map[int]string, len(sets))
	for _, s := range sets {
		if c, ok := chainOf[s.MolID]; ok {
			return nil, &CError{fmt.Sprintf("Residue %d present in chains %q and %q, restrict the chains", s.MolID, c, s.Chain), []string{"Resolver.Dihedrals"}}
		}
		chainOf[s.MolID] = s.Chain
		angles := make(map[string][]int, 2)
		if ids, ok := s.Phi(); ok {
			angles[Phi] = oneBased(ids)
		}
		if ids, ok := s.Psi(); ok {
			angles[Psi] = oneBased(ids)
		}
		if len(angles) > 0 {
			ret[s.MolID] = angles
		}
	}
	return ret, nil
}

// Distances reads the structure in conf and returns, for each pair of 1-based
// atom indexes, the current distance between them in nm, keyed as "id1 id2".
func (R Resolver) Distances(conf string, pairs [][]int) (map[string]float64, error) {
	mol, err := FileRead(conf)
	if err != nil {
		return nil, errDecorate(err, "Resolver.Distances")
	}
	coords := mol.Coords[0]
	ret := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		if len(p) != 2 {
			return nil, &CError{fmt.Sprintf("A distance is defined by 2 atoms, not %d: %v", len(p), p), []string{"Resolver.Distances"}}
		}
		for _, id := range p {
			if id < 1 || id > mol.Len() {
				return nil, &CError{fmt.Sprintf("Atom %d out of range, the structure has %d atoms", id, mol.Len()), []string{"Resolver.Distances"}}
			}
		}
		d := Distance(coords.Vec(p[0]-1), coords.Vec(p[1]-1)) / 10 //A to nm
		ret[fmt.Sprintf("%d %d", p[0], p[1])] = d
	}
	return ret, nil
}

// DihedralValues reads the structure in conf and returns the current phi and
// psi angles, in degrees, of each residue in resids, for every frame in the
// file. Angles a residue doesn't have are NaN. The outer slice has one element
// per frame.
func (R Resolver) DihedralValues(conf string, resids []int) ([]map[int][2]float64, error) {
	mol, err := FileRead(conf)
	if err != nil {
		return nil, errDecorate(err, "Resolver.DihedralValues")
	}
	sets, err := RamaList(mol, R.Chains, resids)
	if err != nil {
		return nil, errDecorate(err, "Resolver.DihedralValues")
	}
	ret := make([]map[int][2]float64, 0, len(mol.Coords))
	for _, c := range mol.Coords {
		angles, err := RamaCalc(c, sets)
		if err != nil {
			return nil, errDecorate(err, "Resolver.DihedralValues")
		}
		frame := make(map[int][2]float64, len(sets))
		for i, s := range sets {
			frame[s.MolID] = [2]float64{angles[i][0], angles[i][1]}
		}
		ret = append(ret, frame)
	}
	return ret, nil
}
