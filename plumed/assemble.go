/*
 * assemble.go, part of goPlumed.
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
	"strings"

	"go.uber.org/zap"
)

// Resolver finds the atoms defining the CVs in a structure file. The
// chem.Resolver type implements it.
type Resolver interface {
	//Dihedrals maps each residue in resids to its angle kinds (see AngleKinds)
	//and to the 4 atoms defining each angle.
	Dihedrals(conf string, resids []int) (map[int]map[string][]int, error)
	//Distances maps each pair of atoms, as "id1 id2", to their current distance.
	Distances(conf string, pairs [][]int) (map[string]float64, error)
}

// Mode selects where the CVs come from.
type Mode int

const (
	TorsionMode Mode = iota
	DistanceMode
	CustomMode
)

var modeNames = [...]string{TorsionMode: "torsion", DistanceMode: "distance", CustomMode: "custom"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode returns the Mode named s.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	return 0, newError(ErrUnknownMode, "ParseMode", "%q, expected one of %s", s, strings.Join(modeNames[:], ", "))
}

// Source is the origin of the CVs of a script. It is implemented only by
// Torsion, Distance and Custom.
type Source interface {
	Mode() Mode
	isSource()
}

// Torsion takes the phi and psi dihedrals of the given residues of the
// structure in Conf as CVs.
type Torsion struct {
	Conf     string
	Residues []int
}

// Distance takes the distances between the given atom pairs of the
// structure in Conf as CVs.
type Distance struct {
	Conf  string
	Pairs [][]int
}

// Custom takes the CVs from a user-written PLUMED file. Files may also
// contain PDB files, which are ignored; exactly one other file must remain.
type Custom struct {
	Files []string
}

func (Torsion) Mode() Mode  { return TorsionMode }
func (Distance) Mode() Mode { return DistanceMode }
func (Custom) Mode() Mode   { return CustomMode }
func (Torsion) isSource()   {}
func (Distance) isSource()  {}
func (Custom) isSource()    {}

// Output tells where and how often the PRINT directive writes.
type Output struct {
	Stride int
	File   string
}

// DefaultOutput returns the PRINT settings used when none are given.
func DefaultOutput() Output {
	return Output{Stride: 100, File: "plm.out"}
}

// Assembler builds PLUMED scripts. It keeps no state between calls, so a
// single Assembler can serve many goroutines.
type Assembler struct {
	resolver Resolver
	log      *zap.Logger
	whole    []int
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithWholeMolecules makes every script start with a WHOLEMOLECULES directive
// for the given (1-based) atoms.
func WithWholeMolecules(atoms []int) Option {
	return func(A *Assembler) {
		A.whole = append([]int(nil), atoms...)
	}
}

// NewAssembler returns an Assembler that finds CV atoms with r and logs to log.
// r can be nil if only Custom sources will be used. A nil log discards messages.
func NewAssembler(r Resolver, log *zap.Logger, opts ...Option) *Assembler {
	if log == nil {
		log = zap.NewNop()
	}
	A := &Assembler{resolver: r, log: log}
	for _, o := range opts {
		o(A)
	}
	return A
}

// cvBlock is the CV part of a script: the directives declaring the CVs and their names.
type cvBlock struct {
	content []string
	names   []string
}

// cvs resolves src into CV directives and names. stride and file are only
// used to rewrite the PRINT line of custom files.
func (A *Assembler) cvs(src Source, out Output) (*cvBlock, error) {
	switch s := src.(type) {
	case Torsion:
		if A.resolver == nil {
			return nil, newError(ErrNoResolver, "Assembler.cvs", "torsion mode needs a structure resolver")
		}
		info, err := A.resolver.Dihedrals(s.Conf, s.Residues)
		if err != nil {
			return nil, fmt.Errorf("resolving dihedrals in %s: %w", s.Conf, err)
		}
		A.log.Info("Create CVs (torsion) from selected residue ids.", zap.String("conf", s.Conf), zap.Ints("resids", s.Residues))
		cvs, err := TorsionCVs(info)
		if err != nil {
			return nil, errDecorate(err, "Assembler.cvs")
		}
		defs, names := splitCVs(cvs)
		return &cvBlock{defs, names}, nil
	case Distance:
		if A.resolver == nil {
			return nil, newError(ErrNoResolver, "Assembler.cvs", "distance mode needs a structure resolver")
		}
		info, err := A.resolver.Distances(s.Conf, s.Pairs)
		if err != nil {
			return nil, fmt.Errorf("resolving distances in %s: %w", s.Conf, err)
		}
		A.log.Info("Create CVs (distance) from selected atom ids.", zap.String("conf", s.Conf), zap.Int("pairs", len(s.Pairs)))
		cvs, err := DistanceCVs(info)
		if err != nil {
			return nil, errDecorate(err, "Assembler.cvs")
		}
		defs, names := splitCVs(cvs)
		return &cvBlock{defs, names}, nil
	case Custom:
		path, err := SelectScript(s.Files)
		if err != nil {
			return nil, errDecorate(err, "Assembler.cvs")
		}
		A.log.Info("Custom CVs are created from plumed files.", zap.String("file", path))
		cs, err := ReadCustom(path, out.Stride, out.File)
		if err != nil {
			return nil, errDecorate(err, "Assembler.cvs")
		}
		return &cvBlock{[]string{cs.Body}, cs.Names}, nil
	}
	return nil, newError(ErrUnknownMode, "Assembler.cvs", "%T", src)
}

// script joins the blocks of a script, preceded by the WHOLEMOLECULES
// directive if the Assembler has one.
func (A *Assembler) script(blocks ...[]string) string {
	lines := make([]string, 0)
	if len(A.whole) > 0 {
		lines = append(lines, WholeMoleculesDef{Entity: A.whole}.String())
	}
	for _, b := range blocks {
		lines = append(lines, b...)
	}
	return strings.Join(lines, "\n")
}

// Plain returns a script that only prints the CVs of src, with no bias,
// and the names of the CVs.
func (A *Assembler) Plain(src Source, out Output) (string, []string, error) {
	block, err := A.cvs(src, out)
	if err != nil {
		return "", nil, errDecorate(err, "Assembler.Plain")
	}
	printDef, err := Print(block.names, out.Stride, out.File)
	if err != nil {
		return "", nil, errDecorate(err, "Assembler.Plain")
	}
	return A.script(block.content, []string{printDef}), block.names, nil
}

// Restrained returns a script that puts a moving restraint, following sched,
// on each CV of src, and prints the CVs plus the squared deviation of the first
// restraint. It also returns the names of the CVs.
func (A *Assembler) Restrained(src Source, sched Schedule, out Output) (string, []string, error) {
	block, err := A.cvs(src, out)
	if err != nil {
		return "", nil, errDecorate(err, "Assembler.Restrained")
	}
	n := len(block.names)
	restraints, resNames, err := MovingRestraints(block.names,
		Broadcast(sched.Kappa, n), Broadcast(sched.Step, n), sched.NSteps,
		Broadcast(sched.At, n), Broadcast(sched.Final, n))
	if err != nil {
		return "", nil, errDecorate(err, "Assembler.Restrained")
	}
	A.log.Debug("Moving restraints created", zap.Strings("restraints", resNames))
	printed := make([]string, 0, n+1)
	printed = append(printed, block.names...)
	printed = append(printed, BiasChannel(resNames[0]))
	printDef, err := Print(printed, out.Stride, out.File)
	if err != nil {
		return "", nil, errDecorate(err, "Assembler.Restrained")
	}
	return A.script(block.content, restraints, []string{printDef}), block.names, nil
}

// Names returns the names of the CVs of src, without building any directive.
func (A *Assembler) Names(src Source) ([]string, error) {
	block, err := A.cvs(src, DefaultOutput())
	if err != nil {
		return nil, errDecorate(err, "Assembler.Names")
	}
	return block.names, nil
}
