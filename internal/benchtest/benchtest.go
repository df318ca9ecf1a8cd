// Package benchtest renders synthetic power sampler and CPU burner reports
// for tests.
package benchtest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing/fstest"

	"github.com/ja7ad/govbench/pkg/grid"
	"github.com/ja7ad/govbench/pkg/logparse"
)

// PowerReport renders s the way the power sampler prints it.
func PowerReport(s logparse.PowerSample) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Measuring for %.0f seconds\n", s.TotalTime)
	fmt.Fprintf(&b, "SOC U=0.830000 V I=1.200000 A P=%f W\n", s.SOCPower)
	fmt.Fprintf(&b, "CA57 U=0.820000 V I=0.400000 A P=%f W\n", s.CA57Power)
	fmt.Fprintf(&b, "Total time: %f SOC: %f J (%f W),    CA57: %f J (%f W)\n",
		s.TotalTime, s.SOCEnergy, s.SOCPower, s.CA57Energy, s.CA57Power)
	fmt.Fprintf(&b, "Total energy: %f J mean power: %f W\n",
		s.SOCEnergy+s.CA57Energy, s.SOCPower+s.CA57Power)
	return b.String()
}

// BurnReport renders s the way the CPU burner prints it.
func BurnReport(s logparse.BurnSample) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Starting CPU burner for %.0f seconds, 1 core(s), with 100%% CPU utilization\n", s.TotalTime)
	fmt.Fprintf(&b, "Stat[0] = %d\n", s.Cycles)
	fmt.Fprintf(&b, "Total time passed: %f s\n", s.TotalTime)
	kcps := 0.0
	if s.TotalTime > 0 {
		kcps = float64(s.Cycles) / s.TotalTime / 1000
	}
	fmt.Fprintf(&b, "Total: %d cycles, %f Kcycles/s\n", s.Cycles, kcps)
	return b.String()
}

// Cell returns the samples to write for a grid cell. burn is ignored for
// idle cells.
type Cell func(k grid.Key) (power logparse.PowerSample, burn logparse.BurnSample)

// Uniform returns a Cell that yields the same samples everywhere.
func Uniform(socE, ca57E float64, cycles int64) Cell {
	return func(grid.Key) (logparse.PowerSample, logparse.BurnSample) {
		return logparse.PowerSample{
				TotalTime:  25,
				SOCEnergy:  socE,
				SOCPower:   socE / 25,
				CA57Energy: ca57E,
				CA57Power:  ca57E / 25,
			}, logparse.BurnSample{
				TotalTime: 25,
				Cycles:    cycles,
			}
	}
}

// FS renders all 42 report files of the matrix.
func FS(cell Cell) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, k := range grid.Keys() {
		p, b := cell(k)
		fsys[k.PowerFile()] = &fstest.MapFile{Data: []byte(PowerReport(p)), Mode: 0o644}
		if k.HasBurn() {
			fsys[k.BurnFile()] = &fstest.MapFile{Data: []byte(BurnReport(b)), Mode: 0o644}
		}
	}
	return fsys
}

// WriteDir writes fsys into dir as flat files.
func WriteDir(dir string, fsys fstest.MapFS) error {
	for name, f := range fsys {
		if err := os.WriteFile(filepath.Join(dir, name), f.Data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
