/*
 * doc.go, part of goPlumed.
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

/*
Package plumed assembles PLUMED input scripts for restrained or plain MD
runs from structured descriptions of collective variables (CVs).

CVs come from one of three sources: backbone dihedrals of selected residues
(Torsion), distances between selected atom pairs (Distance), or a user
written PLUMED file (Custom). An Assembler turns a source into a script made
of, in this order: an optional WHOLEMOLECULES preamble, the CV definitions,
the moving restraints (restrained runs only) and one PRINT directive.

Every function in this package is a pure transformation of its inputs, and
an Assembler can be shared by many goroutines.
*/
package plumed
