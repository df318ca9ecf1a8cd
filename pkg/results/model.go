package results

import (
	"fmt"

	"github.com/ja7ad/govbench/pkg/grid"
	"github.com/ja7ad/govbench/pkg/logparse"
)

// Measurement is the data collected for one grid cell. Burn is nil for idle
// cells.
type Measurement struct {
	Power logparse.PowerSample
	Burn  *logparse.BurnSample
}

// TotalEnergy is the energy of both rails in Joules.
func (m Measurement) TotalEnergy() float64 {
	return m.Power.SOCEnergy + m.Power.CA57Energy
}

// Efficiency returns the energy spent per burner cycle in millijoules. ok is
// false for idle cells, which have no cycle count.
func (m Measurement) Efficiency() (mJPerCycle float64, ok bool) {
	if m.Burn == nil {
		return 0, false
	}
	return 1000 * m.TotalEnergy() / float64(m.Burn.Cycles), true
}

// Grid holds one Measurement per cell of the benchmark matrix. It is
// read-only once built.
type Grid struct {
	cells map[grid.Key]Measurement
}

// New builds a Grid from cells, checking that every cell of the matrix is
// present and that burn samples exist exactly for non-idle cells. cells is
// copied.
func New(cells map[grid.Key]Measurement) (*Grid, error) {
	if len(cells) != grid.Size {
		return nil, fmt.Errorf("%w: %d cells, want %d", ErrIncomplete, len(cells), grid.Size)
	}
	g := &Grid{cells: make(map[grid.Key]Measurement, grid.Size)}
	for _, k := range grid.Keys() {
		m, ok := cells[k]
		if !ok {
			return nil, fmt.Errorf("%w: missing %s", ErrIncomplete, k)
		}
		if (m.Burn != nil) != k.HasBurn() {
			return nil, fmt.Errorf("%w: %s: burn sample presence mismatch", ErrIncomplete, k)
		}
		g.cells[k] = m
	}
	return g, nil
}

// Get returns the measurement for k.
func (g *Grid) Get(k grid.Key) (Measurement, bool) {
	m, ok := g.cells[k]
	return m, ok
}

// Lookup is Get by dimension values.
func (g *Grid) Lookup(gov grid.Governor, threads grid.Threads, cpus grid.CPUSet) (Measurement, bool) {
	return g.Get(grid.Key{Governor: gov, Threads: threads, CPUSet: cpus})
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Each calls fn for every cell in report order.
func (g *Grid) Each(fn func(grid.Key, Measurement)) {
	for _, k := range grid.Keys() {
		fn(k, g.cells[k])
	}
}
