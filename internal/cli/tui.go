package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/coursegraph/pkg/catalog"
	"github.com/matzehuels/coursegraph/pkg/core/dag"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	searchStyle       = lipgloss.NewStyle().Foreground(colorAmber)
)

// =============================================================================
// CourseListModel - Interactive catalog browser
// =============================================================================

// CourseListModel is the bubbletea model for browsing a catalog. The list
// can be narrowed with a search query; enter opens the detail view of the
// selected course.
type CourseListModel struct {
	Catalog *catalog.Catalog
	Graph   *dag.Graph
	Levels  map[string]int // nil when the catalog cannot be laid out

	Query     string
	Searching bool
	Courses   []catalog.Course // courses matching Query

	Cursor int
	Offset int
	Height int

	Detail *relations
}

// NewCourseListModel creates a browser over cat. levels may be nil.
func NewCourseListModel(cat *catalog.Catalog, levels map[string]int) CourseListModel {
	return CourseListModel{
		Catalog: cat,
		Graph:   dag.Build(cat),
		Levels:  levels,
		Courses: cat.Filter(""),
		Height:  15,
	}
}

func (m CourseListModel) Init() tea.Cmd {
	return nil
}

func (m CourseListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Detail != nil {
			return m.updateDetail(msg)
		}
		if m.Searching {
			return m.updateSearch(msg), nil
		}
		return m.updateList(msg)
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m CourseListModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "/":
		m.Searching = true
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		if len(m.Courses) == 0 {
			return m, nil
		}
		rel, err := lookupRelations(m.Graph, m.Courses[m.Cursor].ID)
		if err == nil {
			m.Detail = &rel
		}
	}
	return m, nil
}

func (m CourseListModel) updateSearch(msg tea.KeyMsg) CourseListModel {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.Searching = false
		return m
	case tea.KeyBackspace:
		if r := []rune(m.Query); len(r) > 0 {
			m.Query = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.Query += string(msg.Runes)
	default:
		return m
	}
	m.Courses = m.Catalog.Filter(m.Query)
	m.Cursor, m.Offset = 0, 0
	return m
}

func (m CourseListModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "backspace", "enter":
		m.Detail = nil
	}
	return m, nil
}

func (m *CourseListModel) move(delta int) {
	next := m.Cursor + delta
	if next < 0 || next >= len(m.Courses) {
		return
	}
	m.Cursor = next
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m CourseListModel) View() string {
	if m.Detail != nil {
		return formatCourse(*m.Detail) + "\n" + listDimStyle.Render("esc back  q quit")
	}

	var b strings.Builder

	title := "Courses"
	if m.Catalog.Metadata != nil && m.Catalog.Metadata.Department != "" {
		title = m.Catalog.Metadata.Department
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  / search  ⏎ details  q quit"))
	b.WriteString("\n")
	if m.Searching || m.Query != "" {
		cursor := ""
		if m.Searching {
			cursor = "▏"
		}
		b.WriteString(searchStyle.Render("search: " + m.Query + cursor))
	}
	b.WriteString("\n\n")

	if len(m.Courses) == 0 {
		b.WriteString(listDimStyle.Render("  no courses match"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Courses))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		co := m.Courses[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		level := "—"
		if l, ok := m.Levels[co.ID]; ok {
			level = strconv.Itoa(l)
		}
		mandatory := ""
		if co.Mandatory {
			mandatory = "✓"
		}
		rows = append(rows, []string{cursor, co.ID, co.Name, co.Year, co.Semester, level, mandatory})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Name", "Year", "Semester", "Level", "Mandatory").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Courses) {
				return lipgloss.NewStyle()
			}
			switch {
			case idx == m.Cursor:
				return listSelectedStyle
			case !m.Courses[idx].Mandatory:
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Courses))))

	return b.String()
}
