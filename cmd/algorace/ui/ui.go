// Package ui renders algorace output with lipgloss.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	purple = lipgloss.Color("99")
	green  = lipgloss.Color("76")
	red    = lipgloss.Color("204")
	yellow = lipgloss.Color("214")
	dim    = lipgloss.Color("243")
	faint  = lipgloss.Color("238")
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(purple)
	okStyle     = lipgloss.NewStyle().Foreground(green)
	errStyle    = lipgloss.NewStyle().Foreground(red)
	warnStyle   = lipgloss.NewStyle().Foreground(yellow)
	mutedStyle  = lipgloss.NewStyle().Foreground(dim)
	boldStyle   = lipgloss.NewStyle().Bold(true)

	headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(faint)
)

// Accent highlights algorithm names.
func Accent(s string) string { return accentStyle.Render(s) }

// Bold emphasizes a value.
func Bold(s string) string { return boldStyle.Render(s) }

// Muted renders secondary details such as session ids.
func Muted(s string) string { return mutedStyle.Render(s) }

// SuccessMsg, WarnMsg and ErrorMsg prefix one formatted line with a
// colored marker. None adds a trailing newline.
func SuccessMsg(format string, a ...any) string { return marker(okStyle, "✓", format, a...) }

func WarnMsg(format string, a ...any) string { return marker(warnStyle, "!", format, a...) }

func ErrorMsg(format string, a ...any) string { return marker(errStyle, "✗", format, a...) }

func marker(st lipgloss.Style, sym, format string, a ...any) string {
	return st.Render(sym) + " " + fmt.Sprintf(format, a...)
}

// Pair is one KeyValues line.
type Pair struct {
	key   string
	value string
}

func KV(key, value string) Pair { return Pair{key: key, value: value} }

// KeyValues renders "key: value" lines with the values aligned in one
// column. The result ends with a newline.
func KeyValues(indent string, pairs ...Pair) string {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p.key)+1)
	}

	var sb strings.Builder
	for _, p := range pairs {
		sb.WriteString(indent)
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s", width, p.key+":")))
		sb.WriteString(" " + p.value + "\n")
	}
	return sb.String()
}

// Table renders rows under headers in a rounded border. Odd rows are dimmed
// so long traces stay readable.
func Table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 1:
				return cellStyle.Foreground(dim)
			default:
				return cellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

// ProgressBar draws pct (clamped to 0..100) as width cells followed by the
// percentage. A finished bar is green.
func ProgressBar(pct float64, width int) string {
	pct = min(100, max(0, pct))
	filled := int(pct / 100 * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	st := accentStyle
	if pct >= 100 {
		st = okStyle
	}
	return st.Render(bar) + fmt.Sprintf(" %5.1f%%", pct)
}
