package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ja7ad/govbench/pkg/util"
)

var csvHeader = []string{
	"governor", "cpus", "threads", "power_time_s", "soc_energy_j", "soc_power_w",
	"ca57_energy_j", "ca57_power_w", "total_energy_j", "burn_time_s", "cycles",
	"efficiency_mj_per_cycle",
}

// WriteCSV writes one record per row. Burn columns are empty for idle cells.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Governor, r.CPUs, r.Threads,
			util.FmtFloat(r.PowerTime), util.FmtFloat(r.SOCEnergy), util.FmtFloat(r.SOCPower),
			util.FmtFloat(r.CA57Energy), util.FmtFloat(r.CA57Power), util.FmtFloat(r.Total),
			"", "", "",
		}
		if r.BurnTime != nil {
			rec[9] = util.FmtFloat(*r.BurnTime)
		}
		if r.Cycles != nil {
			rec[10] = strconv.FormatInt(*r.Cycles, 10)
		}
		if r.Efficiency != nil {
			rec[11] = util.FmtFloat(*r.Efficiency)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteYAML writes rows as a YAML sequence.
func WriteYAML(w io.Writer, rows []Row) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
