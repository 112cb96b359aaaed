/*
 * files.go, part of goPlumed.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/goplumed/v3"
)

// readCloser closes both the decompressor and the underlying file.
type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// OpenCompressed opens the file name for reading, transparently decompressing
// it if the name ends in .gz or .zst. It also returns the name without the
// compression extension, so the caller can find out the actual format.
func OpenCompressed(name string) (io.ReadCloser, string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, "", err
	}
	ext := strings.ToLower(filepath.Ext(name))
	base := strings.TrimSuffix(name, filepath.Ext(name))
	switch ext {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, "", fmt.Errorf("opening gzip file %s: %w", name, err)
		}
		return &readCloser{gz, []func() error{gz.Close, f.Close}}, base, nil
	case ".zst", ".zstd":
		zs, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, "", fmt.Errorf("opening zstd file %s: %w", name, err)
		}
		zclose := func() error { zs.Close(); return nil }
		return &readCloser{zs, []func() error{zclose, f.Close}}, base, nil
	}
	return f, name, nil
}

// FileRead reads a PDB or GRO file, possibly compressed, deciding the format
// from the file extension.
func FileRead(name string) (*Molecule, error) {
	in, plain, err := OpenCompressed(name)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	var mol *Molecule
	switch strings.ToLower(filepath.Ext(plain)) {
	case ".pdb", ".ent":
		mol, err = PDBRead(in)
	case ".gro":
		mol, err = GroRead(in)
	default:
		return nil, &CError{fmt.Sprintf("%s: %s", ErrBadFormat, name), []string{"FileRead"}}
	}
	if err != nil {
		return nil, errDecorate(err, "FileRead "+name)
	}
	return mol, nil
}

//PDBRead family

// This tries to guess a chemical element symbol from a PDB atom name. Mostly based on AMBER names.
// It only deals with some common bio-elements.
func symbolFromName(name string) string {
	if name == "" {
		return ""
	}
	switch {
	case len(name) == 4 || name[0] == 'H':
		return "H"
	case name == "CU":
		return "Cu"
	case name == "CL":
		return "Cl"
	case name == "NA":
		return "Na"
	case name == "SE":
		return "Se"
	case strings.HasPrefix(name, "ZN"):
		return "Zn"
	case strings.ContainsRune("CNOPS", rune(name[0])):
		return name[:1]
	}
	return ""
}

// substr returns line[from:to], trimmed, clipping to the line length.
func substr(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return strings.TrimSpace(line[from:to])
}

// Parses a valid ATOM or HETATM line of a PDB file, returns an Atom
// object with the info except for the coordinates, which are returned
// separately.
func readPDBLine(line string, contlines int) (*Atom, [3]float64, error) {
	var coords [3]float64
	if len(line) < 54 {
		return nil, coords, &CError{fmt.Sprintf("Line %d too short for an ATOM record", contlines), []string{"readPDBLine"}}
	}
	err := make([]error, 5)
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.ID, err[0] = strconv.Atoi(substr(line, 6, 11))
	atom.Name = substr(line, 12, 16)
	//PDB says that pos. 17 is for other thing but I see that is
	//used for residue name in many cases
	atom.MolName = substr(line, 17, 20)
	atom.Chain = substr(line, 21, 22)
	atom.MolID, err[1] = strconv.Atoi(substr(line, 22, 26))
	coords[0], err[2] = strconv.ParseFloat(substr(line, 30, 38), 64)
	coords[1], err[3] = strconv.ParseFloat(substr(line, 38, 46), 64)
	coords[2], err[4] = strconv.ParseFloat(substr(line, 46, 54), 64)
	atom.Symbol = substr(line, 76, 78)
	if atom.Symbol == "" {
		atom.Symbol = symbolFromName(atom.Name)
	}
	for i := range err {
		if err[i] != nil {
			return nil, coords, &CError{fmt.Sprintf("Line %d: %s", contlines, err[i]), []string{"readPDBLine"}}
		}
	}
	return atom, coords, nil
}

// PDBRead reads the atomic entries of a PDB from an io.Reader. Every MODEL
// becomes one frame of coordinates. Atom information is taken from the first model.
func PDBRead(pdb io.Reader) (*Molecule, error) {
	atoms := make([]*Atom, 0)
	coords := [][]float64{make([]float64, 0)}
	firstModel := true
	scanner := bufio.NewScanner(pdb)
	contlines := 0
	for scanner.Scan() {
		contlines++
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			at, c, err := readPDBLine(line, contlines)
			if err != nil {
				return nil, errDecorate(err, "PDBRead")
			}
			if firstModel {
				atoms = append(atoms, at)
			}
			coords[len(coords)-1] = append(coords[len(coords)-1], c[0], c[1], c[2])
		case strings.HasPrefix(line, "ENDMDL"):
			if firstModel && len(atoms) > 0 {
				firstModel = false
			}
			if len(coords[len(coords)-1]) > 0 {
				coords = append(coords, make([]float64, 0))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return buildMolecule(atoms, coords, "PDBRead")
}

// PDBFileRead reads a PDB file, possibly compressed.
func PDBFileRead(pdbname string) (*Molecule, error) {
	in, _, err := OpenCompressed(pdbname)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	mol, err := PDBRead(in)
	return mol, errDecorate(err, "PDBFileRead")
}

//End PDBRead family

// GroRead reads a Gromacs gro file from an io.Reader. The coordinates are
// converted from nm to A. Consecutive frames are read as additional sets of coordinates.
func GroRead(gro io.Reader) (*Molecule, error) {
	scanner := bufio.NewScanner(gro)
	atoms := make([]*Atom, 0)
	coords := make([][]float64, 0, 1)
	contlines := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		contlines++
		return scanner.Text(), true
	}
	for {
		title, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(title) == "" && len(coords) > 0 {
			continue //trailing blank lines
		}
		nline, ok := next()
		if !ok {
			return nil, &CError{"Missing number of atoms", []string{"GroRead"}}
		}
		natoms, err := strconv.Atoi(strings.TrimSpace(nline))
		if err != nil {
			return nil, &CError{fmt.Sprintf("Line %d: %s", contlines, err), []string{"GroRead"}}
		}
		frame := make([]float64, 0, natoms*3)
		for i := 0; i < natoms; i++ {
			line, ok := next()
			if !ok {
				return nil, &CError{fmt.Sprintf("Expected %d atoms, file ended after %d", natoms, i), []string{"GroRead"}}
			}
			at, c, err := readGroLine(line, contlines)
			if err != nil {
				return nil, errDecorate(err, "GroRead")
			}
			if len(coords) == 0 {
				atoms = append(atoms, at)
			}
			frame = append(frame, c[0], c[1], c[2])
		}
		coords = append(coords, frame)
		if _, ok := next(); !ok { //the box
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return buildMolecule(atoms, coords, "GroRead")
}

// Parses one atom line of a gro file. Fixed format: %5d%-5s%5s%5d%8.3f%8.3f%8.3f
func readGroLine(line string, contlines int) (*Atom, [3]float64, error) {
	var coords [3]float64
	if len(line) < 44 {
		return nil, coords, &CError{fmt.Sprintf("Line %d too short for a gro atom", contlines), []string{"readGroLine"}}
	}
	err := make([]error, 5)
	at := new(Atom)
	at.MolID, err[0] = strconv.Atoi(substr(line, 0, 5))
	at.MolName = substr(line, 5, 10)
	at.Name = substr(line, 10, 15)
	at.ID, err[1] = strconv.Atoi(substr(line, 15, 20))
	at.Symbol = symbolFromName(at.Name)
	for i := 0; i < 3; i++ {
		coords[i], err[2+i] = strconv.ParseFloat(substr(line, 20+8*i, 28+8*i), 64)
		coords[i] *= 10 //nm to A
	}
	for i := range err {
		if err[i] != nil {
			return nil, coords, &CError{fmt.Sprintf("Line %d: %s", contlines, err[i]), []string{"readGroLine"}}
		}
	}
	return at, coords, nil
}

func buildMolecule(atoms []*Atom, coords [][]float64, caller string) (*Molecule, error) {
	if len(atoms) == 0 {
		return nil, &CError{string(ErrNoAtoms), []string{caller}}
	}
	frames := make([]*v3.Matrix, 0, len(coords))
	for _, c := range coords {
		if len(c) == 0 {
			continue
		}
		m, err := v3.NewMatrix(c)
		if err != nil {
			return nil, &CError{err.Error(), []string{"v3.NewMatrix", caller}}
		}
		frames = append(frames, m)
	}
	top, err := NewTopology(atoms)
	if err != nil {
		return nil, errDecorate(err, caller)
	}
	mol, err := NewMolecule(top, frames)
	return mol, errDecorate(err, caller)
}
