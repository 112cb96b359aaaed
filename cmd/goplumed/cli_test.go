/*
 * cli_test.go, part of goPlumed.
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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const torsionYAML = `mode: torsion
selected_resid: [2]
logging:
  level: error
`

// setup writes the configuration text and points the global flags to it.
func setup(t *testing.T, text string) string {
	t.Helper()
	logger = zap.NewNop()
	ws := t.TempDir()
	cfgPath = filepath.Join(ws, "goplumed.yaml")
	if err := os.WriteFile(cfgPath, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		cfgPath = "goplumed.yaml"
		confFile = ""
		showValues = false
		plotCVs = nil
		ramaResid = 0
		plotOut = "colvar"
		csvOut = ""
	})
	return ws
}

func taskDir(t *testing.T, root, name string) string {
	t.Helper()
	pdb, err := os.ReadFile("../../test/tripeptide.pdb")
	if err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(root, name)
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "conf.pdb"), pdb, 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func newCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	return cmd, &out
}

func TestMakeConf(t *testing.T) {
	setup(t, torsionYAML)
	confFile = "../../test/tripeptide.pdb"
	cmd, out := newCmd()
	if err := runMake(cmd, nil); err != nil {
		t.Fatalf("runMake failed: %v", err)
	}
	want := `dih-002-0: TORSION ATOMS=3,6,7,8
dih-002-1: TORSION ATOMS=6,7,8,10
PRINT STRIDE=100 ARG=dih-002-0,dih-002-1 FILE=plm.out
`
	if out.String() != want {
		t.Errorf("unexpected script:\n%s", out.String())
	}
}

func TestMakeDirs(t *testing.T) {
	ws := setup(t, torsionYAML)
	dirs := []string{taskDir(t, ws, "t1"), taskDir(t, ws, "t2")}
	cmd, out := newCmd()
	if err := runMake(cmd, dirs); err != nil {
		t.Fatalf("runMake failed: %v", err)
	}
	want := filepath.Join(dirs[0], "plumed.dat") + "\n" + filepath.Join(dirs[1], "plumed.dat") + "\n"
	if out.String() != want {
		t.Errorf("unexpected output %q", out.String())
	}
	for _, d := range dirs {
		if _, err := os.Stat(filepath.Join(d, "plumed.dat")); err != nil {
			t.Error(err)
		}
	}

	if err := runMake(cmd, nil); err == nil {
		t.Error("expected an error without task directories")
	}
}

func TestNamesValues(t *testing.T) {
	ws := setup(t, "mode: distance\nselected_atomid: [[1, 10]]\nlogging: {level: error}\n")
	dir := taskDir(t, ws, "t1")
	cmd, out := newCmd()
	if err := runNames(cmd, []string{dir}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "dis-1-10\n" {
		t.Errorf("unexpected names %q", out.String())
	}
	showValues = true
	cmd, out = newCmd()
	if err := runNames(cmd, []string{dir}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "dis-1-10 0.9003\n" {
		t.Errorf("unexpected values %q", out.String())
	}
}

func TestTorsionValues(t *testing.T) {
	ws := setup(t, "mode: torsion\nselected_resid: [1]\nlogging: {level: error}\n")
	dir := taskDir(t, ws, "t1")
	showValues = true
	cmd, out := newCmd()
	if err := runNames(cmd, []string{dir}); err != nil {
		t.Fatal(err)
	}
	// The first residue has no phi.
	if !bytes.HasPrefix(out.Bytes(), []byte("dih-001-1 ")) || bytes.Count(out.Bytes(), []byte("\n")) != 1 {
		t.Errorf("unexpected values %q", out.String())
	}
}

const colvarText = `#! FIELDS time dis-1-10
 0.0 0.90
 0.2 0.95
`

func TestCSV(t *testing.T) {
	ws := setup(t, torsionYAML)
	name := filepath.Join(ws, "COLVAR")
	if err := os.WriteFile(name, []byte(colvarText), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd, out := newCmd()
	if err := runCSV(cmd, []string{name}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "time,dis-1-10\n0,0.9\n0.2,0.95\n" {
		t.Errorf("unexpected csv %q", out.String())
	}
}

func TestPlot(t *testing.T) {
	ws := setup(t, torsionYAML)
	name := filepath.Join(ws, "COLVAR")
	if err := os.WriteFile(name, []byte(colvarText), 0o644); err != nil {
		t.Fatal(err)
	}
	plotOut = filepath.Join(ws, "cvs")
	cmd, _ := newCmd()
	if err := runPlot(cmd, []string{name}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(plotOut + ".png"); err != nil {
		t.Error(err)
	}
}
