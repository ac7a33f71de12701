package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/archie-bi/ursa/internal/logging/events"
	"github.com/archie-bi/ursa/internal/tmux"
	"github.com/archie-bi/ursa/internal/theme"
	uistate "github.com/archie-bi/ursa/internal/ui/state"
)

// Backend is the session multiplexer the controller drives. Mutations return
// a descriptive error on failure; listing degrades to an empty slice so a
// missing server and an empty server look the same.
type Backend interface {
	ListSessions() []tmux.Session
	CreateSession(name string) error
	RenameSession(target, newName string) error
	KillSession(name string) error
}

// Mode selects which key table is active.
type Mode int

const (
	ModeList Mode = iota
	ModeCreate
	ModeRename
)

func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeCreate:
		return "create"
	case ModeRename:
		return "rename"
	default:
		return "unknown"
	}
}

// PendingKind tags the signal that ends the interactive loop.
type PendingKind int

const (
	PendingNone PendingKind = iota
	PendingAttach
	PendingQuit
)

// Pending is observed by the outer driver once the program exits: quit stops
// outright, attach hands the terminal over to tmux.
type Pending struct {
	Kind   PendingKind
	Target string
}

var styles = theme.Default()

// Model owns all interactive state. Update is the controller; View is a pure
// render of the current snapshot and mutates nothing.
type Model struct {
	backend  Backend
	sessions []tmux.Session

	mode         Mode
	selection    uistate.Selection
	renameTarget string
	nameInput    textinput.Model
	errMsg       string
	pending      Pending

	keys    listKeyMap
	width   int
	height  int
	verbose bool
}

// NewModel queries the backend once and starts in list mode with the first
// slot selected.
func NewModel(backend Backend, verbose bool) *Model {
	ti := textinput.New()
	ti.Placeholder = "session-name"
	ti.CharLimit = 64
	ti.Prompt = ""
	ti.Focus()
	m := &Model{
		backend:   backend,
		mode:      ModeList,
		nameInput: ti,
		keys:      defaultListKeyMap(),
		verbose:   verbose,
	}
	m.sessions = backend.ListSessions()
	events.Session.List(len(m.sessions))
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update responds to Bubble Tea messages. Backend mutations run synchronously
// inside key handling; the next frame is not drawn until they finish.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

// PendingAction exposes the terminal signal for the outer driver.
func (m *Model) PendingAction() Pending {
	return m.pending
}

// TotalSlots counts the selectable rows: every session plus the trailing
// "create new session" slot.
func (m *Model) TotalSlots() int {
	return len(m.sessions) + 1
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Whatever the key does, it dismisses a visible error first.
	m.errMsg = ""

	switch m.mode {
	case ModeCreate, ModeRename:
		return m.handleComposerKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		events.UI.Quit()
		m.pending = Pending{Kind: PendingQuit}
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.selection.MoveUp() {
			events.UI.Cursor(m.selection.Index)
		}
	case key.Matches(msg, m.keys.Down):
		if m.selection.MoveDown(m.TotalSlots()) {
			events.UI.Cursor(m.selection.Index)
		}
	case key.Matches(msg, m.keys.Right):
		if m.selection.NextAction(len(m.sessions)) {
			events.UI.SelectAction(m.selection.Index, m.selection.Action.String())
		}
	case key.Matches(msg, m.keys.Left):
		if m.selection.PrevAction(len(m.sessions)) {
			events.UI.SelectAction(m.selection.Index, m.selection.Action.String())
		}
	case key.Matches(msg, m.keys.Select):
		return m.activateSelection()
	case key.Matches(msg, m.keys.Refresh):
		m.refreshSessions()
	}
	return nil
}

func (m *Model) activateSelection() tea.Cmd {
	if m.selection.OnCreateSlot(len(m.sessions)) {
		m.enterCreateMode()
		return nil
	}
	session := m.sessions[m.selection.Index]
	switch m.selection.Action {
	case uistate.ActionAttach:
		events.Session.Attach(session.Name)
		m.pending = Pending{Kind: PendingAttach, Target: session.Name}
		return tea.Quit
	case uistate.ActionRename:
		m.enterRenameMode(session.Name)
	case uistate.ActionKill:
		m.killSession(session.Name)
	}
	return nil
}

func (m *Model) killSession(name string) {
	events.Session.Kill(name)
	if err := m.backend.KillSession(name); err != nil {
		events.Action.Error(err)
		m.errMsg = err.Error()
		return
	}
	if m.verbose {
		events.Action.Success("killed session " + name)
	}
	m.refreshSessions()
	m.selection.Action = uistate.ActionAttach
}

func (m *Model) refreshSessions() {
	m.sessions = m.backend.ListSessions()
	m.selection.Clamp(len(m.sessions))
	events.Session.List(len(m.sessions))
}

func (m *Model) enterCreateMode() {
	events.Session.NewPrompt(len(m.sessions))
	m.mode = ModeCreate
	m.nameInput.SetValue("")
	m.nameInput.CursorStart()
	events.UI.Mode(m.mode.String())
}

func (m *Model) enterRenameMode(name string) {
	events.Session.RenamePrompt(name)
	m.mode = ModeRename
	m.renameTarget = name
	m.nameInput.SetValue(name)
	m.nameInput.CursorEnd()
	events.UI.Mode(m.mode.String())
}

func (m *Model) handleComposerKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.cancelComposer()
		return nil
	case tea.KeyEnter:
		return m.submitComposer()
	case tea.KeyBackspace, tea.KeyCtrlH:
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return cmd
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		msg.Runes = filterNameRunes(msg.Runes)
		if len(msg.Runes) == 0 {
			return nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) cancelComposer() {
	if m.mode == ModeRename {
		events.Session.CancelRename(m.renameTarget, events.SessionReasonEscape)
		m.selection.Action = uistate.ActionAttach
	} else {
		events.Session.CancelNew(events.SessionReasonEscape)
	}
	m.leaveComposer()
}

func (m *Model) submitComposer() tea.Cmd {
	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		return nil
	}
	if m.mode == ModeRename {
		m.submitRename(name)
		return nil
	}
	return m.submitCreate(name)
}

func (m *Model) submitCreate(name string) tea.Cmd {
	events.Session.SubmitNew(name)
	events.Session.Create(name)
	if err := m.backend.CreateSession(name); err != nil {
		events.Action.Error(err)
		m.errMsg = err.Error()
		m.leaveComposer()
		return nil
	}
	if m.verbose {
		events.Action.Success("created session " + name)
	}
	m.pending = Pending{Kind: PendingAttach, Target: name}
	return tea.Quit
}

func (m *Model) submitRename(name string) {
	target := m.renameTarget
	events.Session.SubmitRename(target, name)
	events.Session.Rename(target, name)
	err := m.backend.RenameSession(target, name)
	m.selection.Action = uistate.ActionAttach
	m.leaveComposer()
	if err != nil {
		events.Action.Error(err)
		m.errMsg = err.Error()
		return
	}
	if m.verbose {
		events.Action.Success("renamed session " + target + " to " + name)
	}
	m.refreshSessions()
}

func (m *Model) leaveComposer() {
	m.mode = ModeList
	m.renameTarget = ""
	m.nameInput.SetValue("")
	m.nameInput.CursorStart()
	events.UI.Mode(m.mode.String())
}

// filterNameRunes drops everything outside the tmux session-name grammar:
// letters, digits, hyphen, and underscore.
func filterNameRunes(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			out = append(out, r)
		}
	}
	return out
}
