// Package grid defines the fixed benchmark matrix: CPU frequency governors,
// CPU sets (cluster affinity masks) and burner thread counts.
//
// The order of the values returned by Governors, CPUSets and ThreadCounts is
// the order used for reporting.
package grid

import (
	"fmt"
	"slices"
)

type Governor int

const (
	OnDemand Governor = iota
	PowerSave
	Performance
)

func (g Governor) String() string {
	switch g {
	case OnDemand:
		return "ondemand"
	case PowerSave:
		return "powersave"
	case Performance:
		return "performance"
	default:
		return fmt.Sprintf("governor(%d)", int(g))
	}
}

type CPUSet int

const (
	CPUs0to3 CPUSet = iota // little cluster
	CPUs4to7               // big cluster
)

func (c CPUSet) String() string {
	switch c {
	case CPUs0to3:
		return "0-3"
	case CPUs4to7:
		return "4-7"
	default:
		return fmt.Sprintf("cpuset(%d)", int(c))
	}
}

// Threads is the number of burner threads. Idle means the burner did not run
// and only power was sampled.
type Threads int

const (
	OneThread Threads = iota
	TwoThreads
	FourThreads
	Idle
)

func (t Threads) String() string {
	switch t {
	case OneThread:
		return "1"
	case TwoThreads:
		return "2"
	case FourThreads:
		return "4"
	case Idle:
		return "idle"
	default:
		return fmt.Sprintf("threads(%d)", int(t))
	}
}

// IsIdle reports whether no burner run exists for t.
func (t Threads) IsIdle() bool { return t == Idle }

var (
	governors    = [...]Governor{OnDemand, PowerSave, Performance}
	cpuSets      = [...]CPUSet{CPUs0to3, CPUs4to7}
	threadCounts = [...]Threads{OneThread, TwoThreads, FourThreads, Idle}
)

// Governors returns the governors in report order.
func Governors() []Governor { return slices.Clone(governors[:]) }

// CPUSets returns the CPU sets in report order.
func CPUSets() []CPUSet { return slices.Clone(cpuSets[:]) }

// ThreadCounts returns the thread counts in report order.
func ThreadCounts() []Threads { return slices.Clone(threadCounts[:]) }
