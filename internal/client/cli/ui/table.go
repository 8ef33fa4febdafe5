package ui

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yyocio-drip/hpack/internal/shared/compression/hpack"
)

// maxCellWidth bounds how much of a header value Render will print inline.
// Header values routinely carry a cookie jar or a bearer token, and a
// terminal table shouldn't wrap or truncate the whole display to fit one
// oversized field — AddRow truncates it before it ever reaches Render.
const maxCellWidth = 72

// Table is a minimal column-aligned renderer for hpackctl's output: header
// field lists, dynamic-table dumps, anything shaped like rows of strings
// under named columns.
type Table struct {
	headers []string
	rows    [][]string
	title   string
}

// NewTable starts a table with the given column headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    [][]string{},
	}
}

// WithTitle sets the title rendered above the table.
func (t *Table) WithTitle(title string) *Table {
	t.title = title
	return t
}

// AddRow appends row, truncating any cell over maxCellWidth — the case a
// plain CLI table for fixed-width fields (file names, stream IDs) never
// has to handle but a header-value dump routinely does.
func (t *Table) AddRow(row []string) *Table {
	clipped := make([]string, len(row))
	for i, cell := range row {
		clipped[i] = clipCell(cell)
	}
	t.rows = append(t.rows, clipped)
	return t
}

// Render lays the table out as a lipgloss-styled string: a title line, a
// bold header row, a muted separator, then the data rows, each column
// padded to the widest cell seen in it. A column whose every cell parses as
// a non-negative integer — index, bytes, size — is right-aligned instead of
// left-aligned, since that's most of what hpackctl's own tables show.
func (t *Table) Render() string {
	if len(t.rows) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, header := range t.headers {
		colWidths[i] = lipgloss.Width(header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if width := lipgloss.Width(cell); width > colWidths[i] {
					colWidths[i] = width
				}
			}
		}
	}
	numeric := t.numericColumns()

	var out strings.Builder

	if t.title != "" {
		out.WriteString("\n")
		out.WriteString(titleStyle.Render(t.title))
		out.WriteString("\n\n")
	}

	headerCells := make([]string, len(t.headers))
	for i, header := range t.headers {
		headerCells[i] = pad(tableHeaderStyle.Render(header), colWidths[i], numeric[i])
	}
	out.WriteString(strings.Join(headerCells, "  "))
	out.WriteString("\n")

	rule := "─"
	if runtime.GOOS == "windows" {
		rule = "-"
	}
	ruleCells := make([]string, len(t.headers))
	for i := range t.headers {
		ruleCells[i] = mutedStyle.Render(strings.Repeat(rule, colWidths[i]))
	}
	out.WriteString(strings.Join(ruleCells, "  "))
	out.WriteString("\n")

	for _, row := range t.rows {
		rowCells := make([]string, len(t.headers))
		for i := range t.headers {
			if i < len(row) {
				rowCells[i] = pad(row[i], colWidths[i], numeric[i])
			}
		}
		out.WriteString(strings.Join(rowCells, "  "))
		out.WriteString("\n")
	}

	out.WriteString("\n")
	return out.String()
}

// numericColumns reports, per column, whether every row's cell there parses
// as a non-negative integer (an empty column counts as non-numeric).
func (t *Table) numericColumns() []bool {
	numeric := make([]bool, len(t.headers))
	for i := range t.headers {
		allNumeric := len(t.rows) > 0
		for _, row := range t.rows {
			if i >= len(row) {
				allNumeric = false
				break
			}
			if _, err := strconv.ParseUint(row[i], 10, 64); err != nil {
				allNumeric = false
				break
			}
		}
		numeric[i] = allNumeric
	}
	return numeric
}

// Print writes Render's output to stdout.
func (t *Table) Print() {
	fmt.Print(t.Render())
}

func clipCell(text string) string {
	if lipgloss.Width(text) <= maxCellWidth {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxCellWidth {
		return text
	}
	return string(runes[:maxCellWidth-1]) + "…"
}

func pad(text string, targetWidth int, rightAlign bool) string {
	visible := lipgloss.Width(text)
	if visible >= targetWidth {
		return text
	}
	padding := strings.Repeat(" ", targetWidth-visible)
	if rightAlign {
		return padding + text
	}
	return text + padding
}

// RenderList renders items as a muted bullet list, used for notes that
// don't fit a table's fixed columns — e.g. the fast-path decision
// hpackctl status prints alongside the encoded bytes.
func RenderList(items []string) string {
	bullet := "•"
	if runtime.GOOS == "windows" {
		bullet = "*"
	}
	var out strings.Builder
	for _, item := range items {
		out.WriteString(mutedStyle.Render("  " + bullet + " "))
		out.WriteString(item)
		out.WriteString("\n")
	}
	return out.String()
}

// RenderDynamicTable builds a Table dumping dt's live entries, combined
// index first, in the same newest-to-oldest order hpackctl's inspect
// subcommand always walked by hand before this helper existed.
func RenderDynamicTable(dt *hpack.DynamicTable) *Table {
	t := NewTable([]string{"index", "name", "value"}).
		WithTitle(fmt.Sprintf("dynamic table (%d/%d bytes, %d entries)", dt.CurrentSize(), dt.MaxSize(), dt.Count()))
	for i := 0; i < dt.Count(); i++ {
		idx := hpack.StaticTableSize + 1 + i
		field, ok := dt.Get(idx)
		if !ok {
			continue
		}
		t.AddRow([]string{fmt.Sprintf("%d", idx), field.Name, field.Value})
	}
	return t
}
