/*
 * resolver_test.go, part of goPlumed.
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
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRamaList(Te *testing.T) {
	mol, err := PDBFileRead("test/tripeptide.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	sets, err := RamaList(mol, "A", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(sets) != 3 {
		Te.Fatalf("expected 3 residues, got %d", len(sets))
	}
	if _, ok := sets[0].Phi(); ok {
		Te.Error("the first residue shouldn't have phi")
	}
	if _, ok := sets[2].Psi(); ok {
		Te.Error("the last residue shouldn't have psi")
	}
	rama, err := RamaCalc(mol.Coords[0], sets)
	if err != nil {
		Te.Fatal(err)
	}
	if !math.IsNaN(rama[0][0]) || math.IsNaN(rama[0][1]) || math.IsNaN(rama[1][0]) {
		Te.Errorf("unexpected angles %v", rama)
	}
	if _, err := RamaList(mol, "", []int{4}); err != nil {
		Te.Errorf("a missing residue should be skipped, got %v", err)
	}
}

func TestResolverDihedrals(Te *testing.T) {
	r := Resolver{}
	got, err := r.Dihedrals("test/tripeptide.pdb", []int{1, 2, 3, 40})
	if err != nil {
		Te.Fatal(err)
	}
	want := map[int]map[string][]int{
		1: {Psi: {1, 2, 3, 6}},
		2: {Phi: {3, 6, 7, 8}, Psi: {6, 7, 8, 10}},
		3: {Phi: {8, 10, 11, 12}},
	}
	if !reflect.DeepEqual(got, want) {
		Te.Errorf("got %v, want %v", got, want)
	}
}

// withExtraAtom writes the tripeptide plus line to a temporary PDB file.
func withExtraAtom(Te *testing.T, line string) string {
	Te.Helper()
	pdb, err := os.ReadFile("test/tripeptide.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	text := strings.Replace(string(pdb), "TER\n", line+"\nTER\n", 1)
	path := filepath.Join(Te.TempDir(), "solvated.pdb")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func TestResolverDihedralsSolvated(Te *testing.T) {
	water := "HETATM   15  O   HOH W   2      20.000   5.000   5.000  1.00  0.00           O"
	got, err := Resolver{}.Dihedrals(withExtraAtom(Te, water), []int{2})
	if err != nil {
		Te.Fatal(err)
	}
	want := map[int]map[string][]int{
		2: {Phi: {3, 6, 7, 8}, Psi: {6, 7, 8, 10}},
	}
	if !reflect.DeepEqual(got, want) {
		Te.Errorf("got %v, want %v", got, want)
	}

	//A residue with part of a backbone is still an error.
	partial := "ATOM     15  CA  ALA B   2      20.000   5.000   5.000  1.00  0.00           C"
	if _, err := (Resolver{}).Dihedrals(withExtraAtom(Te, partial), []int{2}); err == nil {
		Te.Error("expected an error for a residue with an incomplete backbone")
	}
}

func TestResolverDistances(Te *testing.T) {
	r := Resolver{}
	got, err := r.Distances("test/tripeptide.gro", [][]int{{1, 10}})
	if err != nil {
		Te.Fatal(err)
	}
	d, ok := got["1 10"]
	if !ok {
		Te.Fatalf("key \"1 10\" missing in %v", got)
	}
	if want := math.Sqrt(81+0.0625) / 10; math.Abs(d-want) > 1e-6 {
		Te.Errorf("got %f nm, want %f", d, want)
	}
	if _, err := r.Distances("test/tripeptide.gro", [][]int{{1, 2, 3}}); err == nil {
		Te.Error("expected an error for a 3-atom distance")
	}
	if _, err := r.Distances("test/tripeptide.gro", [][]int{{1, 15}}); err == nil {
		Te.Error("expected an error for an atom out of range")
	}
}

func TestResolverDihedralValues(Te *testing.T) {
	frames, err := Resolver{}.DihedralValues("test/tripeptide.gro", []int{1, 2, 3})
	if err != nil {
		Te.Fatal(err)
	}
	if len(frames) != 1 {
		Te.Fatalf("expected 1 frame, got %d", len(frames))
	}
	mol, err := PDBFileRead("test/tripeptide.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	c := mol.Coords[0]
	deg := func(a, b, cc, d int) float64 {
		return Dihedral(c.Vec(a-1), c.Vec(b-1), c.Vec(cc-1), c.Vec(d-1)) * 180 / math.Pi
	}
	f := frames[0]
	if !math.IsNaN(f[1][0]) || !math.IsNaN(f[3][1]) {
		Te.Errorf("terminal residues should lack phi (first) and psi (last): %v", f)
	}
	want := map[int][2]float64{
		1: {math.NaN(), deg(1, 2, 3, 6)},
		2: {deg(3, 6, 7, 8), deg(6, 7, 8, 10)},
		3: {deg(8, 10, 11, 12), math.NaN()},
	}
	for resid, w := range want {
		for i := range w {
			if math.IsNaN(w[i]) {
				continue
			}
			if math.Abs(w[i]-f[resid][i]) > 1e-3 {
				Te.Errorf("residue %d angle %d: want %.4f, got %.4f", resid, i, w[i], f[resid][i])
			}
		}
	}
}
