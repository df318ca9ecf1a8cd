package consumption

import "github.com/ja7ad/govbench/pkg/grid"

// Result is the mean power breakdown of one or more measurements.
type Result struct {
	PSOC   float64 // W
	PCA57  float64 // W
	PTotal float64 // W
}

// GovernorSummary aggregates every cell measured under one governor.
type GovernorSummary struct {
	Governor grid.Governor
	Cells    int
	EnergyJ  float64 // both rails, all cells
	TimeSec  float64 // power sampling time, all cells
	Cycles   int64   // burner cycles, non-idle cells
	Averages Result

	// Efficiency statistics over the non-idle cells, in mJ/cycle. They are
	// only meaningful when HasEfficiency is set.
	HasEfficiency     bool
	MeanEfficiency    float64
	GeoMeanEfficiency float64
	BestEfficiency    grid.Key
}
