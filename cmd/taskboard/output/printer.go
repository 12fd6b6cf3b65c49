package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/valueobject"
)

const dueLayout = "2006-01-02"

// Printer writes human-readable CLI output: one-line messages plus the board
// listing, task columns and task details
type Printer struct {
	writer  io.Writer
	palette palette
	quiet   bool
}

type palette struct {
	success  lipgloss.Style
	failure  lipgloss.Style
	warning  lipgloss.Style
	info     lipgloss.Style
	header   lipgloss.Style
	subtle   lipgloss.Style
	bold     lipgloss.Style
	active   lipgloss.Style
	overdue  lipgloss.Style
	status   map[valueobject.Status]lipgloss.Style
	priority map[valueobject.Priority]lipgloss.Style
}

func defaultPalette() palette {
	color := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	return palette{
		success: color("10").Bold(true),
		failure: color("9").Bold(true),
		warning: color("11").Bold(true),
		info:    color("12").Bold(true),
		header:  color("14").Bold(true).Underline(true),
		subtle:  color("8"),
		bold:    lipgloss.NewStyle().Bold(true),
		active:  color("14").Bold(true),
		overdue: color("9"),
		status: map[valueobject.Status]lipgloss.Style{
			valueobject.StatusTodo:       color("12"),
			valueobject.StatusInProgress: color("11"),
			valueobject.StatusDone:       color("10"),
		},
		priority: map[valueobject.Priority]lipgloss.Style{
			valueobject.PriorityLow:    color("10"),
			valueobject.PriorityMedium: color("11"),
			valueobject.PriorityHigh:   color("9").Bold(true),
		},
	}
}

// NewPrinter creates a new console printer
func NewPrinter(writer io.Writer) *Printer {
	return &Printer{writer: writer, palette: defaultPalette()}
}

// DefaultPrinter returns a printer that writes to stdout
func DefaultPrinter() *Printer {
	return NewPrinter(os.Stdout)
}

// ErrorPrinter returns a printer that writes to stderr
func ErrorPrinter() *Printer {
	return NewPrinter(os.Stderr)
}

// SetQuiet suppresses Info and Subtle output
func (p *Printer) SetQuiet(quiet bool) {
	p.quiet = quiet
}

// Writer returns the destination of the printer
func (p *Printer) Writer() io.Writer {
	return p.writer
}

func (p *Printer) line(style lipgloss.Style, prefix, format string, args ...interface{}) {
	fmt.Fprintln(p.writer, style.Render(prefix+fmt.Sprintf(format, args...)))
}

// Success prints a success message
func (p *Printer) Success(format string, args ...interface{}) {
	p.line(p.palette.success, "✓ ", format, args...)
}

// Error prints an error message
func (p *Printer) Error(format string, args ...interface{}) {
	p.line(p.palette.failure, "✗ ", format, args...)
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...interface{}) {
	p.line(p.palette.warning, "⚠ ", format, args...)
}

// Info prints a hint; quiet mode drops it
func (p *Printer) Info(format string, args ...interface{}) {
	if !p.quiet {
		p.line(p.palette.info, "ℹ ", format, args...)
	}
}

// Subtle prints dimmed text; quiet mode drops it
func (p *Printer) Subtle(format string, args ...interface{}) {
	if !p.quiet {
		p.line(p.palette.subtle, "", format, args...)
	}
}

// Header prints a section title
func (p *Printer) Header(format string, args ...interface{}) {
	p.line(p.palette.header, "", format, args...)
}

// Println prints unstyled text followed by a newline
func (p *Printer) Println(format string, args ...interface{}) {
	fmt.Fprintf(p.writer, format+"\n", args...)
}

// Print prints unstyled text
func (p *Printer) Print(format string, args ...interface{}) {
	fmt.Fprintf(p.writer, format, args...)
}

// BoardLine is one board in the board listing
type BoardLine struct {
	ID     string
	Name   string
	Tasks  int
	Active bool
}

// Boards prints the board listing. The active board is starred.
func (p *Printer) Boards(lines []BoardLine) {
	p.Header("Boards")
	p.Println("")

	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		marker, name := "", l.Name
		if l.Active {
			marker, name = "*", p.palette.active.Render(l.Name)
		}
		rows = append(rows, []string{marker, l.ID, name, strconv.Itoa(l.Tasks)})
	}
	p.Table([]string{"", "ID", "Name", "Tasks"}, rows)
}

// TaskColumn prints one status column as a counted header and a task table
func (p *Printer) TaskColumn(status valueobject.Status, tasks []entity.Task, now time.Time) {
	p.Header("%s (%d)", status.Label(), len(tasks))
	if len(tasks) == 0 {
		p.Subtle("  (empty)")
		p.Println("")
		return
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{t.ID, t.Title, p.priorityLabel(t.Priority), t.AssignedTo, p.dueLabel(t, now)})
	}
	p.Table([]string{"ID", "Title", "Priority", "Assignee", "Due"}, rows)
	p.Println("")
}

// TaskDetail prints every field of a task. board is the display name of the
// task's board.
func (p *Printer) TaskDetail(t entity.Task, board string, now time.Time) {
	p.Header("%s", t.Title)
	p.Println("")
	p.field("ID", t.ID)
	p.field("Status", p.statusLabel(t.Status))
	p.field("Priority", p.priorityLabel(t.Priority))
	p.field("Assignee", t.AssignedTo)
	p.field("Due", p.dueLabel(t, now))
	p.field("Board", board)
	if !t.CreatedAt.IsZero() {
		p.field("Created", t.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	if t.Description != "" {
		p.Println("")
		p.Println("%s", t.Description)
	}
}

// field prints a label/value pair, skipping empty values
func (p *Printer) field(label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(p.writer, "%-12s %s\n", label+":", value)
}

func (p *Printer) statusLabel(s valueobject.Status) string {
	return p.palette.status[s].Render(s.Label())
}

func (p *Printer) priorityLabel(pr valueobject.Priority) string {
	return p.palette.priority[pr].Render(pr.Label())
}

func (p *Printer) dueLabel(t entity.Task, now time.Time) string {
	label := DueLabel(t, now)
	if t.IsOverdue(now) {
		return p.palette.overdue.Render(label)
	}
	return label
}

// DueLabel formats a task's due date, flagging it when overdue. A task
// without a due date gives "".
func DueLabel(t entity.Task, now time.Time) string {
	if t.DueDate == nil {
		return ""
	}
	label := t.DueDate.Format(dueLayout)
	if t.IsOverdue(now) {
		label += " (overdue)"
	}
	return label
}

// Table prints headers and rows in aligned columns. Widths are measured in
// terminal cells, so styled and non-ASCII cells line up.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 || len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	p.tableRow(headers, widths, p.palette.bold.Render)

	separator := make([]string, len(widths))
	for i, w := range widths {
		separator[i] = strings.Repeat("-", w)
	}
	fmt.Fprintln(p.writer, p.palette.subtle.Render(strings.Join(separator, "  ")))

	for _, row := range rows {
		p.tableRow(row, widths, nil)
	}
}

func (p *Printer) tableRow(cells []string, widths []int, render func(...string) string) {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if pad := w - lipgloss.Width(cell); pad > 0 {
			cell += strings.Repeat(" ", pad)
		}
		if render != nil {
			cell = render(cell)
		}
		parts[i] = cell
	}
	fmt.Fprintln(p.writer, strings.TrimRight(strings.Join(parts, "  "), " "))
}
