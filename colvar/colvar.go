/*
 * colvar.go, part of goPlumed.
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

// Package colvar reads the files written by the PLUMED PRINT directive.
package colvar

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	chem "github.com/rmera/goplumed"
)

var (
	ErrNoFields = errors.New("colvar: no #! FIELDS header")
	ErrNoColumn = errors.New("colvar: no such column")
)

// Data is the content of a COLVAR file. Fields[0] is normally "time".
type Data struct {
	Fields []string
	Rows   [][]float64
}

// Read reads a COLVAR file from r. Lines starting with "#!" other than the
// FIELDS header (i.e. "#! SET ...") and blank lines are skipped. A restart
// may repeat the header, which is accepted only if the fields don't change.
func Read(r io.Reader) (*Data, error) {
	d := new(Data)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	nline := 0
	for sc.Scan() {
		nline++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			f := strings.Fields(line)
			if len(f) < 2 || f[0] != "#!" || f[1] != "FIELDS" {
				continue
			}
			if d.Fields != nil && !equal(d.Fields, f[2:]) {
				return nil, fmt.Errorf("colvar: line %d: fields changed from %v to %v", nline, d.Fields, f[2:])
			}
			d.Fields = append([]string(nil), f[2:]...)
			continue
		}
		if d.Fields == nil {
			return nil, fmt.Errorf("line %d: %w", nline, ErrNoFields)
		}
		f := strings.Fields(line)
		if len(f) != len(d.Fields) {
			return nil, fmt.Errorf("colvar: line %d: %d values for %d fields", nline, len(f), len(d.Fields))
		}
		row := make([]float64, len(f))
		for i, v := range f {
			var err error
			row[i], err = strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("colvar: line %d: %w", nline, err)
			}
		}
		d.Rows = append(d.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if d.Fields == nil {
		return nil, ErrNoFields
	}
	return d, nil
}

// ReadFile reads the COLVAR file name, which can be gzip or zstd
// compressed.
func ReadFile(name string) (*Data, error) {
	f, _, err := chem.OpenCompressed(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}

// Index returns the position of the field name, or -1.
func (d *Data) Index(name string) int {
	for i, v := range d.Fields {
		if v == name {
			return i
		}
	}
	return -1
}

// Column returns a copy of the values of the field name.
func (d *Data) Column(name string) ([]float64, error) {
	i := d.Index(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoColumn, name)
	}
	ret := make([]float64, len(d.Rows))
	for j, row := range d.Rows {
		ret[j] = row[i]
	}
	return ret, nil
}

// WriteCSV writes the fields as header and then every row to w.
func (d *Data) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.Fields); err != nil {
		return err
	}
	rec := make([]string, len(d.Fields))
	for _, row := range d.Rows {
		for i, v := range row {
			rec[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
