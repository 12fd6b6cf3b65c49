package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/domain/entity"
	"taskboard/tui/style"
)

const sidebarWidth = 36

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.screen == ScreenAuth {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderAuth())
	}

	sidebar := m.renderSidebar()
	mainWidth := m.width - sidebarWidth - 4
	if mainWidth < 60 {
		mainWidth = 60
	}

	var main string
	if m.overlay != overlayNone {
		main = lipgloss.Place(mainWidth, m.height-4, lipgloss.Center, lipgloss.Center, m.renderOverlay())
	} else {
		main = m.renderBoard(mainWidth)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatus(), m.renderHelp())
}

// renderSidebar renders the board list with its error and loading lines
func (m *Model) renderSidebar() string {
	bs := m.state.Boards
	lines := []string{style.HeaderStyle.Render("Boards"), ""}

	if len(bs.Boards) == 0 && !bs.IsLoading {
		lines = append(lines, style.MetaStyle.Render("No boards yet"))
	}
	for i, b := range bs.Boards {
		marker := "  "
		if b.ID == bs.ActiveBoard {
			marker = "▶ "
		}
		name := truncate(b.Name, sidebarWidth-6)
		switch {
		case m.focus == paneSidebar && i == m.focusedBoard:
			lines = append(lines, style.SelectedTaskStyle.Render(marker+name))
		case b.ID == bs.ActiveBoard:
			lines = append(lines, style.ActiveBoardStyle.Render(marker+name))
		default:
			lines = append(lines, marker+name)
		}
	}

	if bs.Error != "" {
		lines = append(lines, "", style.ErrorStyle.Width(sidebarWidth-2).Render(bs.Error))
	}
	if bs.IsLoading {
		lines = append(lines, "", style.LoadingStyle.Render("Loading..."))
	}

	box := style.SidebarStyle
	if m.focus == paneSidebar {
		box = box.BorderForeground(style.FocusedColumnStyle.GetBorderTopForeground())
	}
	return box.Width(sidebarWidth).Height(m.height - 6).Render(strings.Join(lines, "\n"))
}

// renderBoard renders the header and the three status columns
func (m *Model) renderBoard(width int) string {
	current := m.state.CurrentBoard()
	header := "No board selected"
	if current.ID != "" {
		header = "Board: " + current.Name
	}

	// Each column has 2 border chars + 4 padding + 2 margin
	columnWidth := width/len(columnStatuses) - 8
	if columnWidth < 16 {
		columnWidth = 16
	}

	var columns []string
	for i := range columnStatuses {
		columns = append(columns, m.renderColumn(i, columnWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		style.HeaderStyle.Render(header),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
	)
}

// renderColumn renders a single column with scrolling support
func (m *Model) renderColumn(colIndex int, width int) string {
	isFocused := m.focus == paneColumns && colIndex == m.focusedColumn
	tasks := m.columnTasks(colIndex)

	title := style.ColumnTitleStyle.Width(width).
		Render(fmt.Sprintf("%s (%d)", columnStatuses[colIndex].Label(), len(tasks)))

	scrollOffset := m.scrollOffsets[colIndex]
	if scrollOffset > len(tasks) {
		scrollOffset = 0
	}
	endIdx := scrollOffset + m.maxVisibleTasks()
	if endIdx > len(tasks) {
		endIdx = len(tasks)
	}

	var cards []string
	if scrollOffset > 0 {
		cards = append(cards, style.ScrollIndicatorStyle.Width(width).Render("▲ more above ▲"))
	}
	for i := scrollOffset; i < endIdx; i++ {
		cards = append(cards, renderTaskCard(tasks[i], width, isFocused && i == m.focusedTask))
	}
	if endIdx < len(tasks) {
		cards = append(cards, style.ScrollIndicatorStyle.Width(width).Render("▼ more below ▼"))
	}
	if len(tasks) == 0 {
		cards = append(cards, style.MetaStyle.Width(width).Render("(empty)"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", strings.Join(cards, "\n"))

	if isFocused {
		return style.FocusedColumnStyle.Height(m.height - 8).Render(content)
	}
	return style.ColumnStyle.Height(m.height - 8).Render(content)
}

// renderTaskCard renders one task: title, priority, assignee, due date and description
func renderTaskCard(t entity.Task, width int, selected bool) string {
	titleStyle := style.TaskStyle
	if selected {
		titleStyle = style.SelectedTaskStyle
	}
	lines := []string{titleStyle.Width(width).Render(truncate(t.Title, width-2))}

	meta := []string{style.PriorityStyle(t.Priority).Render(t.Priority.Label())}
	if t.AssignedTo != "" {
		meta = append(meta, style.MetaStyle.Render("@"+t.AssignedTo))
	}
	if t.DueDate != nil {
		due := "due " + t.DueDate.Format("2006-01-02")
		if t.IsOverdue(time.Now()) {
			meta = append(meta, style.OverdueStyle.Render(due))
		} else {
			meta = append(meta, style.MetaStyle.Render(due))
		}
	}
	lines = append(lines, " "+strings.Join(meta, " · "))

	if t.Description != "" {
		lines = append(lines, style.DescriptionStyle.Render(" "+truncate(t.Description, width-2)))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m *Model) renderOverlay() string {
	var content string
	switch m.overlay {
	case overlayTaskForm:
		content = m.renderTaskForm()
	case overlayBoardForm:
		content = m.renderBoardForm()
	case overlayConfirm:
		content = m.confirm.prompt + "\n\n" + style.MetaStyle.Render("y (yes)  n (no)")
	}
	return style.OverlayStyle.Render(content)
}

func (m *Model) renderTaskForm() string {
	f := m.taskForm
	labels := []string{"Title *", "Description", "Assigned To", "Due Date"}

	lines := []string{style.HeaderStyle.Render(f.Heading()), ""}
	for i, label := range labels {
		lines = append(lines, fieldLabel(label, m.taskField == i), m.taskInputs[i].View(), "")
	}
	lines = append(lines,
		fieldLabel("Status", m.taskField == fieldStatus), "‹ "+f.Status.Label()+" ›", "",
		fieldLabel("Priority", m.taskField == fieldPriority),
		"‹ "+style.PriorityStyle(f.Priority).Render(f.Priority.Label())+" ›", "",
	)

	if f.Error != "" {
		lines = append(lines, style.ErrorStyle.Render(f.Error), "")
	}
	lines = append(lines, style.MetaStyle.Render("enter ("+strings.ToLower(f.SubmitLabel())+")  tab (next field)  space (cycle)  esc (cancel)"))
	return strings.Join(lines, "\n")
}

func (m *Model) renderBoardForm() string {
	lines := []string{
		style.HeaderStyle.Render(m.boardForm.Heading()),
		"",
		m.boardInput.View(),
		"",
	}
	if e := m.state.Boards.Error; e != "" {
		lines = append(lines, style.ErrorStyle.Render(e), "")
	}
	if m.state.Boards.IsLoading {
		lines = append(lines, style.LoadingStyle.Render("Saving..."), "")
	}
	lines = append(lines, style.MetaStyle.Render("enter (save)  esc (cancel)"))
	return strings.Join(lines, "\n")
}

func (m *Model) renderAuth() string {
	f := m.authForm
	labels := map[int]string{fieldName: "Name", fieldEmail: "Email", fieldPassword: "Password"}

	lines := []string{style.HeaderStyle.Render(f.Mode.String()), ""}
	for _, field := range m.authFields() {
		lines = append(lines, fieldLabel(labels[field], m.authField == field), m.authInputs[field].View(), "")
	}

	if m.submitting {
		lines = append(lines, style.LoadingStyle.Render("Submitting..."), "")
	} else if f.Message != "" {
		if f.Success {
			lines = append(lines, style.ActiveBoardStyle.Render(f.Message), "")
		} else {
			lines = append(lines, style.ErrorStyle.Render(f.Message), "")
		}
	}

	lines = append(lines,
		style.MetaStyle.Render("enter ("+strings.ToLower(f.Mode.String())+")  ctrl+t ("+f.ToggleLabel()+")"),
		style.MetaStyle.Render("tab (next field)  esc (back to board)"),
	)
	return style.OverlayStyle.Width(50).Render(strings.Join(lines, "\n"))
}

// renderStatus renders the transient message line
func (m *Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusIsError {
		return style.ErrorStyle.Render(" " + m.status)
	}
	return style.MetaStyle.Render(" " + m.status)
}

// renderHelp renders the help text at the bottom
func (m *Model) renderHelp() string {
	helpText := []string{
		"Navigation: " + helpEntry(keys.Left) + " " + helpEntry(keys.Right) + " " +
			helpEntry(keys.Up) + " " + helpEntry(keys.Down) + " " + helpEntry(keys.SwitchPane),
		"Tasks: " + helpEntry(keys.AddTask) + " " + helpEntry(keys.EditTask) + " " +
			helpEntry(keys.AdvanceTask) + " " + helpEntry(keys.DeleteTask),
		"Boards: " + helpEntry(keys.NewBoard) + " " + helpEntry(keys.RenameBoard) + " " +
			helpEntry(keys.DeleteBoard) + " " + helpEntry(keys.Refresh),
		helpEntry(keys.Auth) + " " + helpEntry(keys.Quit),
	}

	return style.HelpStyle.Render(strings.Join(helpText, "  •  "))
}

func fieldLabel(label string, focused bool) string {
	if focused {
		return style.ActiveBoardStyle.Render("› " + label)
	}
	return style.MetaStyle.Render("  " + label)
}

// truncate shortens s to max runes, marking the cut with an ellipsis
func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
