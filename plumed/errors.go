/*
 * errors.go, part of goPlumed.
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
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// them with errors.Is.
var (
	ErrArity           = errors.New("wrong number of atoms")
	ErrEmptyResult     = errors.New("no valid CVs created")
	ErrLengthMismatch  = errors.New("length mismatch")
	ErrUnknownMode     = errors.New("unknown mode for making plumed files")
	ErrMalformedScript = errors.New("invalid custom plumed file")
	ErrScriptNotFound  = errors.New("custom plumed file not readable")
	ErrSchedule        = errors.New("invalid restraint schedule")
	ErrUnknownAngle    = errors.New("unknown dihedral angle")
	ErrDuplicateCV     = errors.New("duplicated CV name")
	ErrBadStride       = errors.New("invalid print stride")
	ErrNoResolver      = errors.New("no geometry resolver given")
)

// Error is the error type of the package. The Decorate method allows to add
// the names of the callers the error went through, without wrapping it.
type Error struct {
	kind  error
	msg   string
	cause error
	deco  []string
}

func newError(kind error, caller string, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...), deco: []string{caller}}
}

func (err *Error) Error() string {
	if err.msg == "" {
		return "plumed: " + err.kind.Error()
	}
	return fmt.Sprintf("plumed: %s: %s", err.kind, err.msg)
}

// Unwrap returns the kind of the error and, if present, its underlying cause.
func (err *Error) Unwrap() []error {
	if err.cause != nil {
		return []error{err.kind, err.cause}
	}
	return []error{err.kind}
}

// Decorate adds dec to the list of callers and returns the list.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate decorates err with the caller's name if err is an *Error.
func errDecorate(err error, caller string) error {
	var perr *Error
	if errors.As(err, &perr) {
		perr.Decorate(caller)
	}
	return err
}
