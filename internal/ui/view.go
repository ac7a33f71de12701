package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/archie-bi/ursa/internal/format/table"
	"github.com/archie-bi/ursa/internal/tmux"
	uistate "github.com/archie-bi/ursa/internal/ui/state"
)

const titleText = " Ursa - Tmux Session Manager "

// View implements tea.Model. It reads the model snapshot and returns the
// frame; no state changes happen here.
func (m *Model) View() string {
	list := make([]string, 0, m.TotalSlots()+1)
	list = append(list, m.sessionLines()...)
	if m.mode == ModeCreate {
		list = append(list, m.composerLine())
	}
	list = append(list, m.createSlotLine())

	lines := make([]string, 0, len(list)+6)
	lines = append(lines, m.titleLine(), "")
	lines = append(lines, strings.Split(styles.ListFrame.Render(strings.Join(list, "\n")), "\n")...)
	lines = append(lines, "")
	if m.errMsg != "" {
		lines = append(lines, styles.Error.Render("Error: "+m.errMsg))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, m.helpLine())
	if m.width > 0 {
		for i, line := range lines {
			lines[i] = truncate.String(line, uint(m.width))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) titleLine() string {
	return styles.Title.Render(titleText) + styles.TitleHint.Render(" r to refresh")
}

func (m *Model) sessionLines() []string {
	if len(m.sessions) == 0 {
		return nil
	}
	nameRows := make([][]string, len(m.sessions))
	detailRows := make([][]string, len(m.sessions))
	for i, s := range m.sessions {
		nameRows[i] = []string{s.Name}
		detailRows[i] = []string{sessionDetail(s)}
	}
	names := table.Format(nameRows, []table.Alignment{table.AlignLeft})
	details := table.Format(detailRows, []table.Alignment{table.AlignLeft})

	lines := make([]string, 0, len(m.sessions))
	for i := range m.sessions {
		if m.mode == ModeRename && i == m.selection.Index {
			lines = append(lines, m.composerLine())
			continue
		}
		selected := m.mode == ModeList && i == m.selection.Index
		name := styles.Item.Render(names[i])
		if selected {
			name = styles.SelectedItem.Render(names[i])
		}
		line := m.indicator(selected) + name + " " +
			styles.ItemDetail.Render(details[i]) + "  " +
			m.actionButtons(selected)
		lines = append(lines, line)
	}
	return lines
}

func sessionDetail(s tmux.Session) string {
	noun := "windows"
	if s.Windows == 1 {
		noun = "window"
	}
	detail := fmt.Sprintf("[%d %s]", s.Windows, noun)
	if s.Attached {
		detail += " (attached)"
	}
	return detail
}

func (m *Model) actionButtons(selected bool) string {
	render := func(label string, active bool, style *lipgloss.Style) string {
		if active {
			return style.Render(label)
		}
		return styles.ActionIdle.Render(label)
	}
	return strings.Join([]string{
		render("[Enter]", selected && m.selection.Action == uistate.ActionAttach, styles.ActionAttach),
		render("[Rename]", selected && m.selection.Action == uistate.ActionRename, styles.ActionRename),
		render("[Delete]", selected && m.selection.Action == uistate.ActionKill, styles.ActionKill),
	}, " ")
}

func (m *Model) composerLine() string {
	return m.indicator(true) + styles.Input.Render(m.nameInput.View())
}

func (m *Model) createSlotLine() string {
	selected := m.mode == ModeList && m.selection.OnCreateSlot(len(m.sessions))
	return m.indicator(selected) + styles.Create.Render("+ Create new session")
}

func (m *Model) indicator(selected bool) string {
	if selected {
		return styles.SelectedIndicator.Render("> ")
	}
	return "  "
}

func (m *Model) helpLine() string {
	entry := func(keyText, desc string) string {
		return styles.HelpKey.Render(keyText+" ") + styles.Help.Render(desc)
	}
	switch m.mode {
	case ModeCreate:
		return entry("enter", "create") + "  " + entry("esc", "cancel")
	case ModeRename:
		return entry("enter", "rename") + "  " + entry("esc", "cancel")
	default:
		parts := make([]string, 0, 5)
		for _, b := range []struct{ k, d string }{
			{"↑↓/jk", "navigate"},
			{"←→/hl", "action"},
			{m.keys.Select.Help().Key, "confirm"},
			{m.keys.Refresh.Help().Key, "refresh"},
			{m.keys.Quit.Help().Key, "quit"},
		} {
			parts = append(parts, entry(b.k, b.d))
		}
		return strings.Join(parts, "  ")
	}
}
