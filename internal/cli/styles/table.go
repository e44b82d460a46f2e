package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/pdm/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// An unfocused table still highlights its cursor row; keep it plain for static dumps.
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// SchemaTableColumns returns columns for the daemon schema table.
func SchemaTableColumns() []table.Column {
	return []table.Column{
		{Title: "Section", Width: 10},
		{Title: "Key", Width: 22},
		{Title: "Type", Width: 8},
		{Title: "Default", Width: 12},
		{Title: "Description", Width: 50},
	}
}

// SchemaRow converts a schema row to a table.Row.
func SchemaRow(s entity.ConfigSchema) table.Row {
	def := s.Default
	if def == "" {
		def = "-"
	}
	return table.Row{s.Section, s.Key, s.ValueType.String(), def, s.Description}
}

// SchemaTable renders keys as a static table sized to fit every row.
func SchemaTable(theme *Theme, keys []entity.ConfigSchema) string {
	columns := SchemaTableColumns()
	rows := make([]table.Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, SchemaRow(k))
	}

	width := 0
	for _, c := range columns {
		// cell padding from table.DefaultStyles
		width += c.Width + 2
	}
	t := NewStyledTable(theme, columns, rows, width, len(rows))
	// header line plus its bottom border
	t.SetHeight(len(rows) + 2)
	return t.View()
}
