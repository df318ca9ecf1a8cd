package consumption

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/govbench/internal/benchtest"
	"github.com/ja7ad/govbench/pkg/grid"
	"github.com/ja7ad/govbench/pkg/logparse"
	"github.com/ja7ad/govbench/pkg/results"
)

func TestAccumulator_Sequence(t *testing.T) {
	acc := New()

	ms := []results.Measurement{
		{Power: logparse.PowerSample{TotalTime: 10, SOCEnergy: 5, CA57Energy: 10}, Burn: &logparse.BurnSample{Cycles: 100}},
		{Power: logparse.PowerSample{TotalTime: 20, SOCEnergy: 8, CA57Energy: 4}, Burn: &logparse.BurnSample{Cycles: 300}},
		{Power: logparse.PowerSample{TotalTime: 5, SOCEnergy: 1, CA57Energy: 0.5}},
	}

	var sumPT float64
	for i, m := range ms {
		res := acc.Apply(m)
		require.InDelta(t, m.Power.SOCEnergy/m.Power.TotalTime, res.PSOC, 1e-12, "psoc at %d", i)
		require.InDelta(t, m.Power.CA57Energy/m.Power.TotalTime, res.PCA57, 1e-12, "pca57 at %d", i)
		require.InDelta(t, res.PSOC+res.PCA57, res.PTotal, 1e-12, "ptotal at %d", i)
		sumPT += res.PTotal
		t.Logf("%d: P(soc)=%.3fW P(ca57)=%.3fW E_cum=%.3fJ", i+1, res.PSOC, res.PCA57, acc.EnergyCumJ())
	}

	assert.InDelta(t, 28.5, acc.EnergyCumJ(), 1e-12)
	assert.InDelta(t, 35.0, acc.TimeSec(), 1e-12)
	assert.Equal(t, int64(400), acc.Cycles())
	assert.Equal(t, 3, acc.Count())
	assert.InDelta(t, sumPT/3, acc.Averages().PTotal, 1e-12)
}

func TestAccumulator_ZeroTime(t *testing.T) {
	acc := New()
	res := acc.Apply(results.Measurement{Power: logparse.PowerSample{SOCEnergy: 3}})
	assert.Equal(t, Result{}, res)
	assert.Equal(t, 3.0, acc.EnergyCumJ())
}

func TestAccumulator_Empty(t *testing.T) {
	assert.Equal(t, Result{}, New().Averages())
}

func TestSummarize(t *testing.T) {
	cell := func(k grid.Key) (logparse.PowerSample, logparse.BurnSample) {
		// efficiency (mJ/cycle) = 1000 * 2 / cycles; four threads is the cheapest
		cycles := int64(1000 * (int(k.Threads) + 1))
		return logparse.PowerSample{TotalTime: 10, SOCEnergy: 1, CA57Energy: 1},
			logparse.BurnSample{TotalTime: 10, Cycles: cycles}
	}
	g, err := results.LoadFS(context.Background(), benchtest.FS(cell))
	require.NoError(t, err)

	sums := Summarize(g)
	require.Len(t, sums, 3)

	for i, s := range sums {
		assert.Equal(t, grid.Governors()[i], s.Governor)
		assert.Equal(t, 8, s.Cells)
		assert.InDelta(t, 16.0, s.EnergyJ, 1e-9)
		assert.InDelta(t, 80.0, s.TimeSec, 1e-9)
		assert.Equal(t, int64(2*(1000+2000+3000)), s.Cycles)
		assert.InDelta(t, 0.2, s.Averages.PTotal, 1e-9)

		effs := []float64{2, 1, 2.0 / 3}
		mean := (effs[0] + effs[1] + effs[2]) / 3
		geo := math.Cbrt(effs[0] * effs[1] * effs[2])
		assert.InDelta(t, mean, s.MeanEfficiency, 1e-9)
		assert.InDelta(t, geo, s.GeoMeanEfficiency, 1e-9)
		assert.Equal(t, grid.FourThreads, s.BestEfficiency.Threads)
		assert.Equal(t, grid.CPUs0to3, s.BestEfficiency.CPUSet)
		assert.True(t, s.HasEfficiency)
	}
}

func TestSummarize_ZeroEnergy(t *testing.T) {
	g, err := results.LoadFS(context.Background(), benchtest.FS(benchtest.Uniform(0, 0, 2000)))
	require.NoError(t, err)

	for _, s := range Summarize(g) {
		assert.True(t, s.HasEfficiency)
		assert.Zero(t, s.MeanEfficiency)
		assert.Zero(t, s.GeoMeanEfficiency)
		assert.Equal(t, grid.Key{Governor: s.Governor, Threads: grid.OneThread, CPUSet: grid.CPUs0to3}, s.BestEfficiency)
	}
}

func ExampleAccumulator() {
	acc := New()
	r := acc.Apply(results.Measurement{Power: logparse.PowerSample{TotalTime: 2, SOCEnergy: 1, CA57Energy: 3}})
	fmt.Printf("P(soc)=%.3fW P(total)=%.3fW E=%.3fJ\n", r.PSOC, r.PTotal, acc.EnergyCumJ())
	// Output: P(soc)=0.500W P(total)=2.000W E=4.000J
}
