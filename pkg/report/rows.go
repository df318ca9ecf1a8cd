package report

import (
	"github.com/ja7ad/govbench/pkg/grid"
	"github.com/ja7ad/govbench/pkg/results"
)

// Row is the flat, exportable form of one cell.
type Row struct {
	Governor   string   `json:"governor" yaml:"governor"`
	CPUs       string   `json:"cpus" yaml:"cpus"`
	Threads    string   `json:"threads" yaml:"threads"`
	PowerTime  float64  `json:"power_time_s" yaml:"power_time_s"`
	SOCEnergy  float64  `json:"soc_energy_j" yaml:"soc_energy_j"`
	SOCPower   float64  `json:"soc_power_w" yaml:"soc_power_w"`
	CA57Energy float64  `json:"ca57_energy_j" yaml:"ca57_energy_j"`
	CA57Power  float64  `json:"ca57_power_w" yaml:"ca57_power_w"`
	Total      float64  `json:"total_energy_j" yaml:"total_energy_j"`
	BurnTime   *float64 `json:"burn_time_s,omitempty" yaml:"burn_time_s,omitempty"`
	Cycles     *int64   `json:"cycles,omitempty" yaml:"cycles,omitempty"`
	Efficiency *float64 `json:"efficiency_mj_per_cycle,omitempty" yaml:"efficiency_mj_per_cycle,omitempty"`
}

// Rows flattens g in report order.
func Rows(g *results.Grid) []Row {
	rows := make([]Row, 0, g.Len())
	g.Each(func(k grid.Key, m results.Measurement) {
		r := Row{
			Governor:   k.Governor.String(),
			CPUs:       k.CPUSet.String(),
			Threads:    k.Threads.String(),
			PowerTime:  m.Power.TotalTime,
			SOCEnergy:  m.Power.SOCEnergy,
			SOCPower:   m.Power.SOCPower,
			CA57Energy: m.Power.CA57Energy,
			CA57Power:  m.Power.CA57Power,
			Total:      m.TotalEnergy(),
		}
		if m.Burn != nil {
			bt, cycles := m.Burn.TotalTime, m.Burn.Cycles
			r.BurnTime, r.Cycles = &bt, &cycles
		}
		if eff, ok := m.Efficiency(); ok {
			r.Efficiency = &eff
		}
		rows = append(rows, r)
	})
	return rows
}
