// Package report renders the benchmark grid as a fixed-width comparison table
// and as optional CSV, JSON, YAML and HTML exports.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ja7ad/govbench/pkg/grid"
	"github.com/ja7ad/govbench/pkg/results"
	"github.com/ja7ad/govbench/pkg/util"
)

const (
	// Placeholder is shown instead of the efficiency of idle cells.
	Placeholder = "    -"

	sigDigits = 6
)

// Header returns the column header line of the table.
func Header() string {
	return fmt.Sprintf(" %-14s %-6s %-6s  %-10s | %-10s | %-10s | %-10s",
		"governor", "cpus", "thrds", "SOC, J", "CA57, J", "Total J", "Eff J/cycle")
}

// FormatRow renders the energy columns of one cell: SOC, CA57, their sum and
// the energy per cycle in mJ.
func FormatRow(m results.Measurement) string {
	eff := fmt.Sprintf("%-10s", Placeholder)
	if e, ok := m.Efficiency(); ok {
		eff = fmt.Sprintf("%10s", util.FmtSig(e, sigDigits))
	}
	return fmt.Sprintf(" %10s | %10s | %10s | %s",
		util.FmtFloat(m.Power.SOCEnergy),
		util.FmtFloat(m.Power.CA57Energy),
		util.FmtSig(m.TotalEnergy(), sigDigits),
		eff)
}

// FormatLine renders a full table line for the cell at k.
func FormatLine(k grid.Key, m results.Measurement) string {
	return fmt.Sprintf(" %-14s %-6s %-6s ", k.Governor, k.CPUSet, k.Threads) + FormatRow(m)
}

// Print writes the header and one line per cell, ordered by governor, then
// CPU set, then thread count.
func Print(w io.Writer, g *results.Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Header())
	g.Each(func(k grid.Key, m results.Measurement) {
		fmt.Fprintln(bw, FormatLine(k, m))
	})
	return bw.Flush()
}
