package proc

// SortKey selects the column the process table is ordered by.
type SortKey int

const (
	SortPID SortKey = iota
	SortCPU
	SortRAM
)

// Next advances to the following sort key, cycling pid → cpu → ram → pid.
func (k SortKey) Next() SortKey {
	switch k {
	case SortPID:
		return SortCPU
	case SortCPU:
		return SortRAM
	default:
		return SortPID
	}
}

func (k SortKey) String() string {
	switch k {
	case SortPID:
		return "pid"
	case SortCPU:
		return "cpu"
	case SortRAM:
		return "ram"
	default:
		return "unknown"
	}
}
