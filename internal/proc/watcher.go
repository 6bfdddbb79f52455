package proc

import (
	"fmt"
	"path/filepath"

	"github.com/shirou/gopsutil/v3/process"
)

// Source supplies flat, unordered process snapshots. Implementations must
// return a fresh record slice on every call; callers own the returned
// records outright.
type Source interface {
	Snapshot() ([]*Record, error)
}

// SystemSource reads the live process table through gopsutil. Process
// handles are cached between snapshots so CPU percentages are measured over
// the refresh interval instead of over each process's whole lifetime.
// Thread-level entries are not enumerated; gopsutil lists top-level
// processes only.
//
// SystemSource is not safe for concurrent use; the poller is its only caller.
type SystemSource struct {
	handles map[int32]*process.Process
}

// NewSystemSource returns a Source over the local process table.
func NewSystemSource() *SystemSource {
	return &SystemSource{handles: make(map[int32]*process.Process)}
}

// Snapshot implements Source.
func (s *SystemSource) Snapshot() ([]*Record, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}

	next := make(map[int32]*process.Process, len(procs))
	records := make([]*Record, 0, len(procs))
	for _, p := range procs {
		handle := s.handles[p.Pid]
		if handle == nil {
			handle = p
		}
		next[p.Pid] = handle
		records = append(records, recordFrom(handle))
	}
	s.handles = next
	return records, nil
}

// recordFrom converts a gopsutil handle to a Record. Field reads that fail
// (the process may have exited mid-snapshot, or be otherwise unreadable)
// degrade to zero values rather than dropping the record.
func recordFrom(p *process.Process) *Record {
	args, _ := p.CmdlineSlice()

	name := ""
	var rest []string
	if len(args) > 0 && args[0] != "" {
		name = filepath.Base(args[0])
		rest = args[1:]
	}
	if name == "" {
		if exe, err := p.Exe(); err == nil && exe != "" {
			name = filepath.Base(exe)
		}
	}
	if name == "" {
		name, _ = p.Name()
	}

	ppid, _ := p.Ppid()
	cpu, _ := p.CPUPercent()
	var mem uint64
	if info, err := p.MemoryInfo(); err == nil && info != nil {
		mem = info.RSS
	}

	return &Record{
		PID:         p.Pid,
		Name:        name,
		Args:        rest,
		ParentPID:   ppid,
		CPUPercent:  cpu,
		MemoryBytes: mem,
	}
}
