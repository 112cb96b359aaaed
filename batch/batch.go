/*
 * batch.go, part of goPlumed.
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

// Package batch writes the PLUMED scripts of many task directories at once.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rmera/goplumed/config"
	"github.com/rmera/goplumed/plumed"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one task.
type Result struct {
	Dir   string
	Path  string   // the script written
	Names []string // CV names, in the order of the PRINT directive
}

// Runner assembles and writes the script of each task directory following
// a single configuration.
type Runner struct {
	cfg *config.Config
	asm *plumed.Assembler
	log *zap.Logger
}

// New returns a Runner. A nil log discards messages.
func New(cfg *config.Config, asm *plumed.Assembler, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{cfg: cfg, asm: asm, log: log}
}

// Assemble returns the script for the task in dir and the CV names, without
// writing anything.
func (R *Runner) Assemble(dir string) (string, []string, error) {
	src, err := R.cfg.Source(dir)
	if err != nil {
		return "", nil, err
	}
	if R.cfg.Restrained {
		return R.asm.Restrained(src, R.cfg.Schedule(), R.cfg.Print())
	}
	return R.asm.Plain(src, R.cfg.Print())
}

// Write assembles the script for dir and writes it to dir/PlumedName.
func (R *Runner) Write(dir string) (Result, error) {
	script, names, err := R.Assemble(dir)
	if err != nil {
		return Result{}, fmt.Errorf("task %s: %w", dir, err)
	}
	path := filepath.Join(dir, R.cfg.PlumedName)
	if err := os.WriteFile(path, []byte(script+"\n"), 0o644); err != nil {
		return Result{}, fmt.Errorf("task %s: %w", dir, err)
	}
	R.log.Debug("plumed script written", zap.String("path", path), zap.Int("cvs", len(names)))
	return Result{Dir: dir, Path: path, Names: names}, nil
}

// Run writes the scripts of all dirs, with at most cfg.Workers tasks at the
// same time. The results follow the order of dirs. The first error stops the
// tasks not yet started and is returned.
func (R *Runner) Run(ctx context.Context, dirs []string) ([]Result, error) {
	results := make([]Result, len(dirs))
	g, ctx := errgroup.WithContext(ctx)
	workers := R.cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	g.SetLimit(workers)
	for i, dir := range dirs {
		i, dir := i, dir
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := R.Write(dir)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		R.log.Error("batch failed", zap.Error(err))
		return nil, err
	}
	R.log.Info("batch done", zap.Int("tasks", len(dirs)))
	return results, nil
}
