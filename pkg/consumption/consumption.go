// Package consumption accumulates energy and power figures over groups of
// benchmark measurements.
package consumption

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/ja7ad/govbench/pkg/grid"
	"github.com/ja7ad/govbench/pkg/results"
	"github.com/ja7ad/govbench/pkg/util"
)

// Accumulator keeps running energy totals and power averages.
type Accumulator struct {
	socEnergyJ  float64
	ca57EnergyJ float64
	timeSec     float64
	cycles      int64
	count       int
	sumPSOC     float64
	sumPCA57    float64
	sumPTotal   float64
}

// New creates an empty accumulator.
func New() *Accumulator {
	return &Accumulator{}
}

// Apply adds one measurement and returns its mean power, derived from the
// sampled energy and the sampling time:
//
//	P = E / t
func (a *Accumulator) Apply(m results.Measurement) Result {
	t := m.Power.TotalTime
	psoc := util.SafeDiv(m.Power.SOCEnergy, t)
	pca57 := util.SafeDiv(m.Power.CA57Energy, t)
	res := Result{PSOC: psoc, PCA57: pca57, PTotal: psoc + pca57}

	a.socEnergyJ += m.Power.SOCEnergy
	a.ca57EnergyJ += m.Power.CA57Energy
	a.timeSec += t
	if m.Burn != nil {
		a.cycles += m.Burn.Cycles
	}
	a.count++
	a.sumPSOC += res.PSOC
	a.sumPCA57 += res.PCA57
	a.sumPTotal += res.PTotal

	return res
}

// EnergyCumJ returns cumulative energy of both rails in Joules.
func (a *Accumulator) EnergyCumJ() float64 { return a.socEnergyJ + a.ca57EnergyJ }

// TimeSec returns the cumulative sampling time.
func (a *Accumulator) TimeSec() float64 { return a.timeSec }

// Cycles returns the cumulative burner cycle count.
func (a *Accumulator) Cycles() int64 { return a.cycles }

// Count returns the number of applied measurements.
func (a *Accumulator) Count() int { return a.count }

// Averages returns average powers over all applied measurements.
func (a *Accumulator) Averages() Result {
	if a.count == 0 {
		return Result{}
	}
	n := float64(a.count)
	return Result{
		PSOC:   a.sumPSOC / n,
		PCA57:  a.sumPCA57 / n,
		PTotal: a.sumPTotal / n,
	}
}

// Summarize returns one summary per governor, in report order.
func Summarize(g *results.Grid) []GovernorSummary {
	out := make([]GovernorSummary, 0, len(grid.Governors()))
	for _, gov := range grid.Governors() {
		acc := New()
		var (
			effs   []float64
			best   grid.Key
			lowest = math.Inf(1)
		)
		for _, cpus := range grid.CPUSets() {
			for _, threads := range grid.ThreadCounts() {
				m, ok := g.Lookup(gov, threads, cpus)
				if !ok {
					continue
				}
				acc.Apply(m)
				if eff, ok := m.Efficiency(); ok {
					effs = append(effs, eff)
					if eff < lowest {
						lowest = eff
						best = grid.Key{Governor: gov, Threads: threads, CPUSet: cpus}
					}
				}
			}
		}

		s := GovernorSummary{
			Governor: gov,
			Cells:    acc.Count(),
			EnergyJ:  acc.EnergyCumJ(),
			TimeSec:  acc.TimeSec(),
			Cycles:   acc.Cycles(),
			Averages: acc.Averages(),
		}
		if len(effs) > 0 {
			s.HasEfficiency = true
			s.MeanEfficiency = stats.Mean(effs)
			// stats.GeoMean is NaN once a zero is present; the product is zero then.
			if lowest > 0 {
				s.GeoMeanEfficiency = stats.GeoMean(effs)
			}
			s.BestEfficiency = best
		}
		out = append(out, s)
	}
	return out
}
