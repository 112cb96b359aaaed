/*
 * batch_test.go, part of goPlumed.
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

package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	chem "github.com/rmera/goplumed"
	"github.com/rmera/goplumed/config"
	"github.com/rmera/goplumed/plumed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// taskDirs creates n task directories, each with a copy of the tripeptide.
func taskDirs(Te *testing.T, n int) []string {
	Te.Helper()
	pdb, err := os.ReadFile("../test/tripeptide.pdb")
	require.NoError(Te, err)
	root := Te.TempDir()
	dirs := make([]string, n)
	for i := range dirs {
		dirs[i] = filepath.Join(root, "task"+string(rune('a'+i)))
		require.NoError(Te, os.Mkdir(dirs[i], 0o755))
		require.NoError(Te, os.WriteFile(filepath.Join(dirs[i], "conf.pdb"), pdb, 0o644))
	}
	return dirs
}

func torsionConfig() *config.Config {
	c := config.DefaultConfig()
	c.SelectedResid = []int{2}
	c.Workers = 2
	return c
}

func TestRun(Te *testing.T) {
	cfg := torsionConfig()
	R := New(cfg, plumed.NewAssembler(chem.Resolver{}, nil), nil)
	dirs := taskDirs(Te, 5)
	results, err := R.Run(context.Background(), dirs)
	require.NoError(Te, err)
	require.Len(Te, results, len(dirs))

	want := `dih-002-0: TORSION ATOMS=3,6,7,8
dih-002-1: TORSION ATOMS=6,7,8,10
PRINT STRIDE=100 ARG=dih-002-0,dih-002-1 FILE=plm.out
`
	for i, res := range results {
		assert.Equal(Te, dirs[i], res.Dir)
		assert.Equal(Te, filepath.Join(dirs[i], "plumed.dat"), res.Path)
		assert.Equal(Te, []string{"dih-002-0", "dih-002-1"}, res.Names)
		got, err := os.ReadFile(res.Path)
		require.NoError(Te, err)
		assert.Equal(Te, want, string(got))
	}
}

func TestRunRestrained(Te *testing.T) {
	cfg := torsionConfig()
	cfg.Restrained = true
	R := New(cfg, plumed.NewAssembler(chem.Resolver{}, nil), nil)
	dirs := taskDirs(Te, 1)
	results, err := R.Run(context.Background(), dirs)
	require.NoError(Te, err)
	got, err := os.ReadFile(results[0].Path)
	require.NoError(Te, err)
	assert.Contains(Te, string(got), "res-dih-002-0: MOVINGRESTRAINT ARG=dih-002-0")
	assert.Contains(Te, string(got), "ARG=dih-002-0,dih-002-1,res-dih-002-0.force2")
}

func TestRunFails(Te *testing.T) {
	cfg := torsionConfig()
	R := New(cfg, plumed.NewAssembler(chem.Resolver{}, nil), nil)
	dirs := taskDirs(Te, 4)
	require.NoError(Te, os.Remove(filepath.Join(dirs[2], "conf.pdb")))
	results, err := R.Run(context.Background(), dirs)
	assert.Error(Te, err)
	assert.Contains(Te, err.Error(), dirs[2])
	assert.Nil(Te, results)
}

func TestRunCanceled(Te *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	R := New(torsionConfig(), plumed.NewAssembler(chem.Resolver{}, nil), nil)
	dirs := taskDirs(Te, 3)
	_, err := R.Run(ctx, dirs)
	assert.ErrorIs(Te, err, context.Canceled)
	_, statErr := os.Stat(filepath.Join(dirs[0], "plumed.dat"))
	assert.True(Te, os.IsNotExist(statErr))
}

func TestAssembleCustom(Te *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Mode = "custom"
	cfg.CVFile = []string{"cv.dat", "conf.pdb"}
	dir := taskDirs(Te, 1)[0]
	body := "d: DISTANCE ATOMS=1,10\nPRINT ARG=d STRIDE=1 FILE=x\n"
	require.NoError(Te, os.WriteFile(filepath.Join(dir, "cv.dat"), []byte(body), 0o644))

	R := New(cfg, plumed.NewAssembler(nil, nil), nil)
	script, names, err := R.Assemble(dir)
	require.NoError(Te, err)
	assert.Equal(Te, []string{"d"}, names)
	assert.Equal(Te, "d: DISTANCE ATOMS=1,10\nPRINT STRIDE=100 ARG=d FILE=plm.out", script)
}
