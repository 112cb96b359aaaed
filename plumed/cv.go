/*
 * cv.go, part of goPlumed.
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
	"sort"
	"strconv"
	"strings"
)

// Kind is the kind of a collective variable.
type Kind int

const (
	Dihedral Kind = iota
	Dist
	CustomCV
)

func (k Kind) String() string {
	switch k {
	case Dihedral:
		return "dihedral"
	case Dist:
		return "distance"
	case CustomCV:
		return "custom"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// CV is one collective variable, with the directive that declares it. Atoms
// is nil for custom CVs, and Directive is empty, as those are declared by
// the user's file.
type CV struct {
	Kind      Kind
	Name      string
	Atoms     []int
	Directive string
}

// TorsionCVs builds one dihedral CV for each residue and angle in info,
// which maps residue IDs to angle kinds (see AngleKinds) to the 4 atoms
// defining the angle. Residues are processed in increasing order, and the
// angles of a residue in the order of AngleKinds.
func TorsionCVs(info map[int]map[string][]int) ([]CV, error) {
	if len(info) == 0 {
		return nil, newError(ErrEmptyResult, "TorsionCVs", "no dihedral found for the selected residues")
	}
	resids := make([]int, 0, len(info))
	for resid := range info {
		resids = append(resids, resid)
	}
	sort.Ints(resids)
	ret := make([]CV, 0, 2*len(info))
	for _, resid := range resids {
		angles := info[resid]
		for kind := range angles {
			if AngleIndex(kind) < 0 {
				return nil, newError(ErrUnknownAngle, "TorsionCVs", "residue %d: %q, expected one of %v", resid, kind, angleKinds)
			}
		}
		for angid, kind := range angleKinds {
			atoms, ok := angles[kind]
			if !ok {
				continue
			}
			if len(atoms) != 4 {
				return nil, newError(ErrArity, "TorsionCVs", "make sure dihedral angle defined by 4 atoms, not %d (residue %d, %s)", len(atoms), resid, kind)
			}
			def := TorsionDef{Label: TorsionName(resid, angid)}
			copy(def.Atoms[:], atoms)
			ret = append(ret, CV{Kind: Dihedral, Name: def.Label, Atoms: append([]int(nil), atoms...), Directive: def.String()})
		}
	}
	if len(ret) == 0 {
		return nil, newError(ErrEmptyResult, "TorsionCVs", "the selected residues have no dihedrals")
	}
	return ret, nil
}

// DistanceCVs builds one distance CV for each key of info. Keys are 2
// whitespace-separated atom indexes, "id1 id2"; the values (reference
// distances) are not used. CVs are sorted by the first atom, then by the second.
func DistanceCVs(info map[string]float64) ([]CV, error) {
	if len(info) == 0 {
		return nil, newError(ErrEmptyResult, "DistanceCVs", "no distance found for the selected atoms")
	}
	type pair struct {
		key   string
		atoms [2]int
	}
	pairs := make([]pair, 0, len(info))
	for key := range info {
		f := strings.Fields(key)
		if len(f) != 2 {
			return nil, newError(ErrArity, "DistanceCVs", "make sure distance defined by 2 atoms, not %d (%q)", len(f), key)
		}
		var p pair
		p.key = key
		for i, s := range f {
			id, err := strconv.Atoi(s)
			if err != nil {
				return nil, newError(ErrArity, "DistanceCVs", "%q is not an atom index (%q)", s, key)
			}
			p.atoms[i] = id
		}
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		a, b := pairs[i].atoms, pairs[j].atoms
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return pairs[i].key < pairs[j].key
	})
	ret := make([]CV, 0, len(pairs))
	seen := make(map[string]string, len(pairs))
	for _, p := range pairs {
		def := DistanceDef{Label: DistanceName(p.atoms[0], p.atoms[1]), Atoms: p.atoms}
		if prev, ok := seen[def.Label]; ok {
			return nil, newError(ErrDuplicateCV, "DistanceCVs", "%q and %q both define %s", prev, p.key, def.Label)
		}
		seen[def.Label] = p.key
		ret = append(ret, CV{Kind: Dist, Name: def.Label, Atoms: p.atoms[:], Directive: def.String()})
	}
	return ret, nil
}

// splitCVs returns the directives and the names of cvs, in order.
func splitCVs(cvs []CV) ([]string, []string) {
	defs := make([]string, 0, len(cvs))
	names := make([]string, 0, len(cvs))
	for _, cv := range cvs {
		if cv.Directive != "" {
			defs = append(defs, cv.Directive)
		}
		names = append(names, cv.Name)
	}
	return defs, names
}
