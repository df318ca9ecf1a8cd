package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder(t *testing.T) {
	var gs, cs, ts []string
	for _, g := range Governors() {
		gs = append(gs, g.String())
	}
	for _, c := range CPUSets() {
		cs = append(cs, c.String())
	}
	for _, th := range ThreadCounts() {
		ts = append(ts, th.String())
	}
	assert.Equal(t, []string{"ondemand", "powersave", "performance"}, gs)
	assert.Equal(t, []string{"0-3", "4-7"}, cs)
	assert.Equal(t, []string{"1", "2", "4", "idle"}, ts)
}

func TestOrderSlicesAreIsolated(t *testing.T) {
	g := Governors()
	g[0] = Performance
	g = append(g, Performance)
	assert.Len(t, g, 4)
	assert.Equal(t, []Governor{OnDemand, PowerSave, Performance}, Governors())

	c := CPUSets()
	c[0], c[1] = c[1], c[0]
	assert.Equal(t, []CPUSet{CPUs0to3, CPUs4to7}, CPUSets())

	th := ThreadCounts()
	th[3] = OneThread
	assert.Equal(t, []Threads{OneThread, TwoThreads, FourThreads, Idle}, ThreadCounts())
	assert.Equal(t, Key{Governor: OnDemand, Threads: OneThread, CPUSet: CPUs0to3}, Keys()[0])
}

func TestUnknownValues(t *testing.T) {
	assert.Equal(t, "governor(9)", Governor(9).String())
	assert.Equal(t, "cpuset(-1)", CPUSet(-1).String())
	assert.Equal(t, "threads(7)", Threads(7).String())
	assert.False(t, Key{Governor: 3}.Valid())
	assert.True(t, Key{Governor: Performance, Threads: Idle, CPUSet: CPUs4to7}.Valid())
}

func TestFileNames(t *testing.T) {
	k := Key{Governor: PowerSave, Threads: FourThreads, CPUSet: CPUs4to7}
	assert.Equal(t, "power-powersave-4-7-c4.txt", k.PowerFile())
	assert.Equal(t, "burn-powersave-4-7-c4.txt", k.BurnFile())
	assert.True(t, k.HasBurn())

	idle := Key{Governor: OnDemand, Threads: Idle, CPUSet: CPUs0to3}
	assert.Equal(t, "power-ondemand-0-3-cidle.txt", idle.PowerFile())
	assert.False(t, idle.HasBurn())
	assert.Equal(t, "ondemand/0-3/cidle", idle.String())
}

func TestKeys(t *testing.T) {
	keys := Keys()
	require.Len(t, keys, 24)
	require.Equal(t, 24, Size)

	seen := make(map[Key]bool)
	for _, k := range keys {
		assert.True(t, k.Valid(), k.String())
		assert.False(t, seen[k], "duplicate %s", k)
		seen[k] = true
	}

	// governor -> cpu set -> thread count
	assert.Equal(t, Key{OnDemand, OneThread, CPUs0to3}, keys[0])
	assert.Equal(t, Key{OnDemand, Idle, CPUs0to3}, keys[3])
	assert.Equal(t, Key{OnDemand, OneThread, CPUs4to7}, keys[4])
	assert.Equal(t, Key{PowerSave, OneThread, CPUs0to3}, keys[8])
	assert.Equal(t, Key{Performance, Idle, CPUs4to7}, keys[23])

	burns := 0
	for _, k := range keys {
		if k.HasBurn() {
			burns++
		}
	}
	assert.Equal(t, 18, burns)
}
