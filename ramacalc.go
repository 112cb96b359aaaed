/*
 * ramacalc.go, part of goPlumed.
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
	"math"
	"strings"

	v3 "github.com/rmera/goplumed/v3"
)

// RamaSet contains the indexes (0-based) of the backbone atoms that define
// the phi and psi dihedrals of one residue. Cprev is -1 for the first
// residue of a chain, and Npost is -1 for the last one.
type RamaSet struct {
	Cprev   int
	N       int
	Ca      int
	C       int
	Npost   int
	MolID   int
	Molname string
	Chain   string
}

// Phi returns the indexes of the 4 atoms defining phi, and false if the
// residue has no phi.
func (R RamaSet) Phi() ([]int, bool) {
	if R.Cprev < 0 {
		return nil, false
	}
	return []int{R.Cprev, R.N, R.Ca, R.C}, true
}

// Psi returns the indexes of the 4 atoms defining psi, and false if the
// residue has no psi.
func (R RamaSet) Psi() ([]int, bool) {
	if R.Npost < 0 {
		return nil, false
	}
	return []int{R.N, R.Ca, R.C, R.Npost}, true
}

// RamaCalc obtains the values for the phi and psi dihedrals indicated in []Ramaset, for the
// structure M. The angles are in *degrees*. It returns a slice of 2-element slices, one for the phi the next for the psi
// dihedral. An angle that the residue doesn't have is NaN.
func RamaCalc(M *v3.Matrix, dihedrals []RamaSet) ([][]float64, error) {
	if M == nil || dihedrals == nil {
		return nil, &CError{string(ErrNilData), []string{"RamaCalc"}}
	}
	r := M.NVecs()
	angle := func(ids []int, ok bool) float64 {
		if !ok {
			return math.NaN()
		}
		return Dihedral(M.Vec(ids[0]), M.Vec(ids[1]), M.Vec(ids[2]), M.Vec(ids[3])) * (180 / math.Pi)
	}
	Rama := make([][]float64, 0, len(dihedrals))
	for _, j := range dihedrals {
		if j.Npost >= r || j.C >= r || j.Cprev >= r {
			return nil, &CError{"Data out of range", []string{"RamaCalc"}}
		}
		Rama = append(Rama, []float64{angle(j.Phi()), angle(j.Psi())})
	}
	return Rama, nil
}

type backbone struct {
	n, ca, c int
	molid    int
	molname  string
	chain    string
}

// RamaList takes a molecule and returns a slice of RamaSet, which contains the
// indexes for each dihedral of the residues in resids. If resids is nil, all
// residues with a complete backbone are included.
// It only obtains dihedral lists for residues belonging to a chain included in chains.
// If chains is an empty string, all chains are included.
func RamaList(M Atomer, chains string, resids []int) ([]RamaSet, error) {
	if M == nil {
		return nil, &CError{string(ErrNilData), []string{"RamaList"}}
	}
	residues := make([]*backbone, 0)
	var cur *backbone
	for num := 0; num < M.Len(); num++ {
		at := M.Atom(num)
		if chains != "" && at.Chain != "" && !strings.Contains(chains, at.Chain) {
			continue
		}
		if cur == nil || cur.molid != at.MolID || cur.chain != at.Chain {
			cur = &backbone{n: -1, ca: -1, c: -1, molid: at.MolID, molname: at.MolName, chain: at.Chain}
			residues = append(residues, cur)
		}
		switch at.Name {
		case "N":
			cur.n = num
		case "CA":
			cur.ca = num
		case "C":
			cur.c = num
		}
	}
	//consecutive residues of the same chain are bonded through the peptide bond.
	bonded := func(a, b *backbone) bool {
		return a.chain == b.chain && b.molid == a.molid+1 && a.c >= 0 && b.n >= 0
	}
	ret := make([]RamaSet, 0, len(residues))
	for k, res := range residues {
		if resids != nil && !isInInt(resids, res.molid) {
			continue
		}
		if res.n < 0 && res.ca < 0 && res.c < 0 {
			continue //solvent, ions, ligands
		}
		if res.n < 0 || res.ca < 0 || res.c < 0 {
			if resids == nil {
				continue
			}
			return nil, &CError{fmt.Sprintf("Incorrect backbone for residue %s%d chain %q N: %d CA: %d C: %d", res.molname, res.molid, res.chain, res.n, res.ca, res.c), []string{"RamaList"}}
		}
		set := RamaSet{Cprev: -1, N: res.n, Ca: res.ca, C: res.c, Npost: -1, MolID: res.molid, Molname: res.molname, Chain: res.chain}
		if k > 0 && bonded(residues[k-1], res) {
			set.Cprev = residues[k-1].c
		}
		if k < len(residues)-1 && bonded(res, residues[k+1]) {
			set.Npost = residues[k+1].n
		}
		ret = append(ret, set)
	}
	return ret, nil
}

// isInInt returns true if test is in container, false otherwise.
func isInInt(container []int, test int) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
