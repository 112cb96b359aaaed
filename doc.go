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

/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package chem reads the structures of the systems to be simulated and finds
the atoms that define their collective variables (CVs).


	**Capabilities**


    Reads PDB and GRO files, including multi-model/multi-frame ones, plain,
	gzip or zstd compressed.

    Lists the phi/psi backbone dihedrals of a protein, or a subset of its
	residues, and calculates their values (degrees) for each frame.

    Finds and measures (in nm) interatomic distances.

    Resolver puts the above together for the plumed package, which
	writes the actual PLUMED scripts. Resolver returns 1-based atom
	indexes, everything else in this package is 0-based.

*/
package chem
