// Package results loads the benchmark matrix from a directory of power
// sampler and CPU burner reports.
package results

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/ja7ad/govbench/pkg/grid"
	"github.com/ja7ad/govbench/pkg/logparse"
)

// Load reads every report of the matrix from root.
func Load(ctx context.Context, root string) (*Grid, error) {
	return load(ctx, os.DirFS(root), func(name string) string {
		return filepath.Join(root, name)
	})
}

// LoadFS reads every report of the matrix from the top directory of fsys.
func LoadFS(ctx context.Context, fsys fs.FS) (*Grid, error) {
	return load(ctx, fsys, path.Clean)
}

// load fails on the first unreadable or malformed report and never returns a
// partial grid.
func load(ctx context.Context, fsys fs.FS, display func(string) string) (*Grid, error) {
	cells := make(map[grid.Key]Measurement, grid.Size)

	for _, gov := range grid.Governors() {
		for _, threads := range grid.ThreadCounts() {
			for _, cpus := range grid.CPUSets() {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				k := grid.Key{Governor: gov, Threads: threads, CPUSet: cpus}

				name := k.PowerFile()
				text, err := readReport(fsys, name, display)
				if err != nil {
					return nil, err
				}
				power, err := logparse.ParsePower(text)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", display(name), err)
				}

				m := Measurement{Power: power}
				if k.HasBurn() {
					name = k.BurnFile()
					text, err = readReport(fsys, name, display)
					if err != nil {
						return nil, err
					}
					burn, err := logparse.ParseBurn(text)
					if err != nil {
						return nil, fmt.Errorf("%s: %w", display(name), err)
					}
					m.Burn = &burn
				}
				cells[k] = m
			}
		}
	}

	slog.Debug("loaded benchmark grid", "cells", len(cells))
	return New(cells)
}

func readReport(fsys fs.FS, name string, display func(string) string) (string, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", &FileAccessError{Path: display(name), Err: err}
	}
	slog.Debug("read report", "file", display(name), "bytes", len(b))
	return string(b), nil
}
