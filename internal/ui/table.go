// Package ui provides the shared terminal presentation helpers: aligned
// tables, compact ages, word wrapping, and the category color styles.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tableCellMaxWidth = 60
const tableCellEllipsis = "..."

// TableBuilder collects rows and renders a formatted table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row to the table.
func (builder *TableBuilder) AddRow(row []string) {
	builder.rows = append(builder.rows, row)
}

// String renders the table output.
func (builder *TableBuilder) String() string {
	return FormatTable(builder.headers, builder.rows)
}

// FormatTable renders headers and rows as an aligned table. Cell widths
// are measured with lipgloss so styled cells align correctly.
func FormatTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = lipgloss.Width(flattenTableCell(header))
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if width := lipgloss.Width(flattenTableCell(cell)); width > widths[i] {
				widths[i] = width
			}
		}
	}

	var builder strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			cell = flattenTableCell(cell)
			builder.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			padding := widths[i] - lipgloss.Width(cell)
			builder.WriteString(strings.Repeat(" ", padding+2))
		}
		builder.WriteByte('\n')
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}

	return builder.String()
}

// TruncateTableCell limits cell width while preserving visible characters.
func TruncateTableCell(value string) string {
	value = flattenTableCell(value)
	if lipgloss.Width(value) <= tableCellMaxWidth {
		return value
	}

	max := tableCellMaxWidth - lipgloss.Width(tableCellEllipsis)
	var builder strings.Builder
	visible := 0
	for _, r := range value {
		if visible >= max {
			break
		}
		builder.WriteRune(r)
		visible++
	}
	return builder.String() + tableCellEllipsis
}

// flattenTableCell replaces newlines and tabs so a cell stays on one row.
func flattenTableCell(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
}
