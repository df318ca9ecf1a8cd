package report

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/govbench/internal/benchtest"
	"github.com/ja7ad/govbench/pkg/grid"
	"github.com/ja7ad/govbench/pkg/logparse"
	"github.com/ja7ad/govbench/pkg/results"
)

func measurement(soc, ca57 float64, cycles int64) results.Measurement {
	m := results.Measurement{Power: logparse.PowerSample{TotalTime: 25, SOCEnergy: soc, CA57Energy: ca57}}
	if cycles > 0 {
		m.Burn = &logparse.BurnSample{TotalTime: 25, Cycles: cycles}
	}
	return m
}

func TestHeader(t *testing.T) {
	assert.Equal(t,
		" governor       cpus   thrds   SOC, J     | CA57, J    | Total J    | Eff J/cycle",
		Header())
}

func TestFormatRow(t *testing.T) {
	cases := []struct {
		name string
		in   results.Measurement
		want string
	}{
		{"unit_efficiency", measurement(1, 2, 1000), "        1.0 |        2.0 |        3.0 |        3.0"},
		{"six_digits", measurement(24.9, 8.2, 123456), "       24.9 |        8.2 |       33.1 |   0.268112"},
		{"idle", measurement(1, 1, 0), "        1.0 |        1.0 |        2.0 |     -     "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatRow(tc.in))
		})
	}
}

func TestFormatRow_IdleNeverDivides(t *testing.T) {
	// zero energy and no burn sample would be NaN if divided
	row := FormatRow(measurement(0, 0, 0))
	assert.NotContains(t, row, "nan")
	assert.True(t, strings.HasSuffix(row, "| "+Placeholder+"     "))
}

func TestFormatLine(t *testing.T) {
	k := grid.Key{Governor: grid.OnDemand, Threads: grid.OneThread, CPUSet: grid.CPUs0to3}
	assert.Equal(t,
		" ondemand       0-3    1              1.0 |        1.0 |        2.0 |        1.0",
		FormatLine(k, measurement(1, 1, 2000)))

	k = grid.Key{Governor: grid.Performance, Threads: grid.Idle, CPUSet: grid.CPUs4to7}
	assert.Equal(t,
		" performance    4-7    idle           1.0 |        1.0 |        2.0 |     -     ",
		FormatLine(k, measurement(1, 1, 0)))
}

func TestPrint_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, benchtest.WriteDir(dir, benchtest.FS(benchtest.Uniform(1, 1, 2000))))

	g, err := results.Load(context.Background(), dir)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, g))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 25)
	assert.Equal(t, Header(), lines[0])

	keys := grid.Keys()
	for i, line := range lines[1:] {
		k := keys[i]
		fields := strings.Fields(line)
		require.GreaterOrEqual(t, len(fields), 4, line)
		assert.Equal(t, k.Governor.String(), fields[0], line)
		assert.Equal(t, k.CPUSet.String(), fields[1], line)
		assert.Equal(t, k.Threads.String(), fields[2], line)

		cols := strings.Split(line, "|")
		require.Len(t, cols, 4, line)
		eff := strings.TrimSpace(cols[3])
		if k.Threads.IsIdle() {
			assert.Equal(t, "-", eff, line)
			continue
		}
		v, err := strconv.ParseFloat(eff, 64)
		require.NoError(t, err, line)
		assert.Equal(t, 1.0, v, line)
	}
}

func TestPrint_DisplayOrder(t *testing.T) {
	g, err := results.LoadFS(context.Background(), benchtest.FS(benchtest.Uniform(1, 1, 2000)))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, g))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	var got []string
	for _, line := range lines[1:9] {
		f := strings.Fields(line)
		got = append(got, f[0]+" "+f[1]+" "+f[2])
	}
	assert.Equal(t, []string{
		"ondemand 0-3 1", "ondemand 0-3 2", "ondemand 0-3 4", "ondemand 0-3 idle",
		"ondemand 4-7 1", "ondemand 4-7 2", "ondemand 4-7 4", "ondemand 4-7 idle",
	}, got)
}
