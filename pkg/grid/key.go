package grid

import "fmt"

// Key identifies one cell of the matrix.
type Key struct {
	Governor Governor
	Threads  Threads
	CPUSet   CPUSet
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/c%s", k.Governor, k.CPUSet, k.Threads)
}

// Valid reports whether every component of k is a known value.
func (k Key) Valid() bool {
	return k.Governor >= OnDemand && k.Governor <= Performance &&
		k.CPUSet >= CPUs0to3 && k.CPUSet <= CPUs4to7 &&
		k.Threads >= OneThread && k.Threads <= Idle
}

// HasBurn reports whether a burner report exists for the cell.
func (k Key) HasBurn() bool { return !k.Threads.IsIdle() }

func (k Key) suffix() string {
	return fmt.Sprintf("%s-%s-c%s.txt", k.Governor, k.CPUSet, k.Threads)
}

// PowerFile is the name of the power sampler report for the cell.
func (k Key) PowerFile() string { return "power-" + k.suffix() }

// BurnFile is the name of the burner report for the cell. Idle cells have none.
func (k Key) BurnFile() string { return "burn-" + k.suffix() }

// Keys returns every cell in report order: governor, then CPU set, then
// thread count.
func Keys() []Key {
	keys := make([]Key, 0, Size)
	for _, g := range governors {
		for _, c := range cpuSets {
			for _, t := range threadCounts {
				keys = append(keys, Key{Governor: g, Threads: t, CPUSet: c})
			}
		}
	}
	return keys
}

// Size is the number of cells in the matrix.
const Size = len(governors) * len(cpuSets) * len(threadCounts)
