/*
 * restraint.go, part of goPlumed.
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
	"math"
)

// Value is a numeric parameter given either as a single number, to be used
// for every CV, or as a sequence with one number per CV.
type Value struct {
	scalar float64
	seq    []float64
	isSeq  bool
}

// Scalar returns a Value that is broadcast to every CV.
func Scalar(v float64) Value {
	return Value{scalar: v}
}

// Seq returns a Value with one element per CV.
func Seq(v ...float64) Value {
	return Value{seq: append([]float64(nil), v...), isSeq: true}
}

// IsSeq returns true if v was given as a sequence.
func (v Value) IsSeq() bool { return v.isSeq }

// Scalar returns the scalar held by v. It is meaningless if v is a sequence.
func (v Value) Scalar() float64 { return v.scalar }

// Values returns a copy of the sequence held by v, or nil if v is a scalar.
func (v Value) Values() []float64 {
	if !v.isSeq {
		return nil
	}
	return append([]float64(nil), v.seq...)
}

// Broadcast normalizes v to a slice for n CVs: a scalar is repeated n times,
// a sequence is returned as is (as a copy), whatever its length. Checking
// the length is left to the consumer of the slice.
func Broadcast(v Value, n int) []float64 {
	if v.isSeq {
		return v.Values()
	}
	ret := make([]float64, n)
	for i := range ret {
		ret[i] = v.scalar
	}
	return ret
}

// Schedule holds the parameters of the moving restraints of a run. Each
// restraint starts at step 0 with target At, reaches target Final at step
// Step, and stays there until step NSteps. Kappa is the same in all stages.
type Schedule struct {
	Kappa  Value
	At     Value
	Step   Value
	Final  Value
	NSteps int64
}

// DefaultSchedule returns the schedule used when the user gives no parameters.
func DefaultSchedule() Schedule {
	return Schedule{
		Kappa:  Scalar(0.5),
		At:     Scalar(1.0),
		Step:   Scalar(500000),
		Final:  Scalar(10.0),
		NSteps: 500000,
	}
}

// MovingRestraints builds one 3-stage moving restraint per CV in cvs, and
// returns the directives and the names of the restraints, in the order of cvs.
// kappa, step, at and final must have one element per CV. All lengths are
// checked before anything is built.
func MovingRestraints(cvs []string, kappa, step []float64, nsteps int64, at, final []float64) ([]string, []string, error) {
	checks := []struct {
		name string
		l    int
	}{{"kappa", len(kappa)}, {"at", len(at)}, {"step", len(step)}, {"final", len(final)}}
	for _, c := range checks {
		if c.l != len(cvs) {
			return nil, nil, newError(ErrLengthMismatch, "MovingRestraints", "make sure `%s` and `cv_names` have the same length: %d values for %d CVs", c.name, c.l, len(cvs))
		}
	}
	steps := make([]int64, len(step))
	for i, s := range step {
		if s != math.Trunc(s) || s < 0 || s > float64(nsteps) {
			return nil, nil, newError(ErrSchedule, "MovingRestraints", "transition step %v for %s must be an integer between 0 and nsteps (%d)", s, cvs[i], nsteps)
		}
		steps[i] = int64(s)
	}
	defs := make([]string, 0, len(cvs))
	names := make([]string, 0, len(cvs))
	for i, cv := range cvs {
		def := MovingRestraintDef{
			Label: RestraintName(cv),
			Arg:   cv,
			Stages: [3]Stage{
				{Step: 0, At: at[i], Kappa: kappa[i]},
				{Step: steps[i], At: final[i], Kappa: kappa[i]},
				{Step: nsteps, At: final[i], Kappa: kappa[i]},
			},
		}
		names = append(names, def.Label)
		defs = append(defs, def.String())
	}
	return defs, names, nil
}
