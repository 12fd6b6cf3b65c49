package style

import (
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/domain/valueobject"
	"taskboard/internal/infrastructure/config"
)

var (
	SidebarStyle         lipgloss.Style
	ColumnStyle          lipgloss.Style
	FocusedColumnStyle   lipgloss.Style
	OverlayStyle         lipgloss.Style
	ColumnTitleStyle     lipgloss.Style
	HeaderStyle          lipgloss.Style
	TaskStyle            lipgloss.Style
	SelectedTaskStyle    lipgloss.Style
	ActiveBoardStyle     lipgloss.Style
	HelpStyle            lipgloss.Style
	ErrorStyle           lipgloss.Style
	LoadingStyle         lipgloss.Style
	DescriptionStyle     lipgloss.Style
	MetaStyle            lipgloss.Style
	OverdueStyle         lipgloss.Style
	ScrollIndicatorStyle lipgloss.Style

	priorityStyles map[valueobject.Priority]lipgloss.Style
)

// InitStyles initializes the styles from config
func InitStyles(cfg *config.Config) {
	styles := cfg.TUI.Styles

	// Boxes
	SidebarStyle = boxStyle(styles.Sidebar)
	ColumnStyle = boxStyle(styles.Column)
	FocusedColumnStyle = boxStyle(styles.FocusedColumn)
	OverlayStyle = boxStyle(styles.Overlay)

	// Column title style
	ColumnTitleStyle = textStyle(styles.ColumnTitle)
	if styles.ColumnTitle.Align != "" {
		ColumnTitleStyle = ColumnTitleStyle.Align(getAlign(styles.ColumnTitle.Align))
	}

	HeaderStyle = textStyle(styles.Header)
	TaskStyle = textStyle(styles.Task)
	SelectedTaskStyle = textStyle(styles.SelectedTask)
	ActiveBoardStyle = textStyle(styles.ActiveBoard)
	ErrorStyle = textStyle(styles.Error)
	LoadingStyle = textStyle(styles.Loading)
	DescriptionStyle = textStyle(styles.Description)
	MetaStyle = textStyle(styles.Meta)
	OverdueStyle = textStyle(styles.Overdue)
	ScrollIndicatorStyle = textStyle(styles.ScrollIndicator).Align(lipgloss.Center)

	// Help style
	HelpStyle = lipgloss.NewStyle().
		Padding(styles.Help.PaddingVertical, 0, 0, styles.Help.PaddingHorizontal)
	if styles.Help.Foreground != "" {
		HelpStyle = HelpStyle.Foreground(lipgloss.Color(styles.Help.Foreground))
	}

	priorityStyles = map[valueobject.Priority]lipgloss.Style{
		valueobject.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color(styles.Priority.High)).Bold(true),
		valueobject.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color(styles.Priority.Medium)),
		valueobject.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color(styles.Priority.Low)),
	}
}

// PriorityStyle returns the style for a priority badge
func PriorityStyle(p valueobject.Priority) lipgloss.Style {
	if s, ok := priorityStyles[p]; ok {
		return s
	}
	return MetaStyle
}

func boxStyle(c config.ColumnStyle) lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(c.PaddingVertical, c.PaddingHorizontal).
		Border(getBorder(c.BorderStyle)).
		BorderForeground(lipgloss.Color(c.BorderColor))
}

func textStyle(t config.TextStyle) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(t.PaddingVertical, t.PaddingHorizontal)
	if t.Foreground != "" {
		s = s.Foreground(lipgloss.Color(t.Foreground))
	}
	if t.Background != "" {
		s = s.Background(lipgloss.Color(t.Background))
	}
	if t.Bold {
		s = s.Bold(true)
	}
	if t.Italic {
		s = s.Italic(true)
	}
	return s
}

// getBorder returns the border style based on the name
func getBorder(name string) lipgloss.Border {
	switch name {
	case "rounded":
		return lipgloss.RoundedBorder()
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// getAlign returns the alignment based on the name
func getAlign(name string) lipgloss.Position {
	switch name {
	case "left":
		return lipgloss.Left
	case "center":
		return lipgloss.Center
	case "right":
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}
