package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treetop-tui/treetop/internal/pattern"
	"github.com/treetop-tui/treetop/internal/proc"
	"github.com/treetop-tui/treetop/internal/state"
	"github.com/treetop-tui/treetop/internal/tree"
)

// uiMode is the application mode. It drives both key dispatch and rendering;
// both switch over it exhaustively.
type uiMode int

const (
	modeNormal uiMode = iota
	modeEditing
	modeSelected
)

// pageStride is how many rows the page keys move the cursor.
const pageStride = 20

// Options configures the UI.
type Options struct {
	Store    *state.Store
	Sender   proc.Sender
	PollTick time.Duration
	// Pattern is the initial filter text, already validated by the caller.
	Pattern string
	// DontHideSelf disables the self-hiding policy of record matching.
	DontHideSelf bool
	// SelfPID is the viewer's own process id, passed in explicitly so
	// matching stays pure.
	SelfPID int32
}

// Model is the root application state for Bubble Tea. It exclusively owns
// the forest, the pattern, and the mode; all three are rebuilt or replaced
// wholesale, never shared with other goroutines.
type Model struct {
	store        *state.Store
	sender       proc.Sender
	pollTick     time.Duration
	selfPID      int32
	dontHideSelf bool

	keys   keyMap
	styles Styles

	// Data state, rebuilt every tick.
	records []*proc.Record
	forest  *tree.Forest[*proc.Record, int32]
	stale   bool

	pat          pattern.Pattern
	patternInput textinput.Model
	sortKey      proc.SortKey

	mode        uiMode
	selectedPID int32 // valid only in modeSelected

	cursor int
	offset int

	width  int
	height int
	ready  bool

	errMsg   string // transient, cleared on the next key press
	fatalErr error
}

// New creates the application model.
func New(opts Options) Model {
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = 2 * time.Second
	}

	input := textinput.New()
	input.Prompt = ""
	input.SetValue(opts.Pattern)
	input.CursorEnd()

	return Model{
		store:        opts.Store,
		sender:       opts.Sender,
		pollTick:     pollTick,
		selfPID:      opts.SelfPID,
		dontHideSelf: opts.DontHideSelf,
		keys:         defaultKeyMap(),
		styles:       defaultStyles(),
		forest:       tree.New[*proc.Record, int32](),
		pat:          pattern.FromText(opts.Pattern),
		patternInput: input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.pollTick))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.normalize()
		return m, nil

	case tickMsg:
		return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.pollTick))

	case snapshotMsg:
		snap := state.Snapshot(msg)
		if snap.Records != nil {
			m.records = snap.Records
		}
		m.stale = snap.IsStale()
		m.rebuild()
		return m, nil
	}
	return m, nil
}

// handleKey dispatches keyboard input per the current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = "" // transient errors live until the next key press

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.ForceQuit),
		m.mode == modeNormal && key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-pageStride)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(pageStride)

	case key.Matches(msg, m.keys.Select):
		if m.mode == modeEditing {
			m.mode = modeNormal
			m.patternInput.Blur()
		} else {
			m.selectAtCursor()
		}

	case key.Matches(msg, m.keys.Search):
		m.mode = modeEditing
		cmd = m.patternInput.Focus()

	case key.Matches(msg, m.keys.CycleSort):
		m.sortKey = m.sortKey.Next()

	case key.Matches(msg, m.keys.Escape):
		if m.mode == modeEditing || m.mode == modeSelected {
			m.mode = modeNormal
			m.selectedPID = 0
			m.patternInput.Blur()
		}

	default:
		switch m.mode {
		case modeEditing:
			m.patternInput, cmd = m.patternInput.Update(msg)
			m.pat = m.pat.Edit(func(string) string { return m.patternInput.Value() })

		case modeSelected:
			switch {
			case key.Matches(msg, m.keys.Term):
				if quit := m.sendSignal(proc.SignalTerm); quit != nil {
					return m, quit
				}
			case key.Matches(msg, m.keys.Kill):
				if quit := m.sendSignal(proc.SignalKill); quit != nil {
					return m, quit
				}
			}

		case modeNormal:
			// Nothing else to dispatch.
		}
	}

	m.rebuild()
	return m, cmd
}

// sendSignal delivers sig to the selected process. Permission failures are
// contained as a transient message; anything else is fatal and returns the
// quit command.
func (m *Model) sendSignal(sig proc.Signal) tea.Cmd {
	err := m.sender.Send(m.selectedPID, sig)
	switch {
	case err == nil:
	case proc.IsPermission(err):
		m.errMsg = "missing permissions to send signal"
	default:
		m.fatalErr = err
		return tea.Quit
	}
	return nil
}

// rebuild reconstructs the forest from the latest flat records: recompute
// match states against the current pattern, build, sort by the current key,
// filter to visible lineage, and reconcile the selection.
func (m *Model) rebuild() {
	for _, r := range m.records {
		r.UpdateMatch(m.pat, m.selfPID, m.dontHideSelf)
	}

	forest := tree.Build(m.records)
	sortKey := m.sortKey
	forest.SortBy(func(a, b *proc.Record) int { return a.Compare(b, sortKey) })
	m.forest = forest.Filter(func(r *proc.Record) bool { return r.Match.Visible() })

	if m.mode == modeSelected && !m.contains(m.selectedPID) {
		m.mode = modeNormal
		m.selectedPID = 0
	}
	m.normalize()
}

func (m *Model) contains(pid int32) bool {
	for n := range m.forest.All() {
		if n.Value.PID == pid {
			return true
		}
	}
	return false
}

// rows returns the current display rows. They are recomputed on demand and
// never cached across ticks: prefixes depend on sibling order and filtering.
func (m Model) rows() []tree.Row[*proc.Record, int32] {
	return m.forest.FlattenWithPrefixes()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.normalize()
}

func (m *Model) selectAtCursor() {
	rows := m.rows()
	if m.cursor >= 0 && m.cursor < len(rows) {
		m.mode = modeSelected
		m.selectedPID = rows[m.cursor].Node.Value.PID
	}
}

// listHeight is the number of rows the process list may occupy.
func (m Model) listHeight() int {
	h := m.height - headerHeight - 1 // status line
	if m.errMsg != "" {
		h--
	}
	return h
}

func (m *Model) normalize() {
	m.cursor, m.offset = normalizeViewport(m.cursor, m.offset, len(m.rows()), m.listHeight())
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits. A
// fatal runtime error (any signal-delivery failure other than permission
// denied) is returned to the caller for a non-zero exit.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.fatalErr != nil {
		return fm.fatalErr
	}
	return nil
}
