package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette (ANSI 256).
var (
	colorTeal  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorAmber = lipgloss.Color("220")
	colorRed   = lipgloss.Color("167")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	// StyleTitle renders headings such as a course name.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)

	// StyleHighlight renders course IDs.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorTeal)

	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue renders field values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning renders warning text.
	StyleWarning = lipgloss.NewStyle().Foreground(colorAmber)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorTeal)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(16)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

// statusLine is an icon and its colour.
type statusLine struct {
	icon  string
	style lipgloss.Style
}

var (
	lineSuccess = statusLine{"✓", lipgloss.NewStyle().Foreground(colorGreen)}
	lineError   = statusLine{"✗", lipgloss.NewStyle().Foreground(colorRed)}
	lineWarning = statusLine{"!", lipgloss.NewStyle().Foreground(colorAmber)}
	lineInfo    = statusLine{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

// uiOut receives status output. Command results (query output, stdout
// renders) go to the command's own writer instead.
var uiOut io.Writer = os.Stdout

func (s statusLine) print(format string, args ...any) {
	fmt.Fprintln(uiOut, s.style.Render(s.icon)+" "+fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { lineSuccess.print(format, args...) }
func printError(format string, args ...any)   { lineError.print(format, args...) }
func printInfo(format string, args ...any)    { lineInfo.print(format, args...) }

func printWarning(format string, args ...any) {
	lineWarning.print("%s", StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(uiOut, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile lists a written output file.
func printFile(path string) {
	fmt.Fprintln(uiOut, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

// printStats summarizes a catalog: "4 courses · 4 prerequisites · 4 levels · fresh".
func printStats(courses, edges, levels int, cached bool) {
	parts := []string{fmt.Sprintf("%d courses", courses)}
	if edges > 0 {
		parts = append(parts, fmt.Sprintf("%d prerequisites", edges))
	}
	if levels > 0 {
		parts = append(parts, fmt.Sprintf("%d levels", levels))
	}
	status := lineInfo.style.Render("fresh")
	if cached {
		status = lineSuccess.style.Render("cached")
	}
	sep := StyleDim.Render(" · ")
	fmt.Fprintln(uiOut, "  "+StyleDim.Render(strings.Join(parts, " · "))+sep+status)
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(uiOut, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

func printNewline() { fmt.Fprintln(uiOut) }

// formatKeyValue renders one labeled line of course details.
func formatKeyValue(key, value string) string {
	return styleKey.Render(key) + " " + StyleValue.Render(value) + "\n"
}

// formatIDList renders a labeled list of course IDs, or "none".
func formatIDList(key string, ids []string) string {
	value := StyleDim.Render("none")
	if len(ids) > 0 {
		value = StyleHighlight.Render(strings.Join(ids, ", "))
	}
	return styleKey.Render(key) + " " + value + "\n"
}
