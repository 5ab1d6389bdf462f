// Package table lays out rows of cells as a bordered plain-text table:
//
//	+-----+-------+
//	| Key | Value |
//	+-----+-------+
//	|  a  |   b   |
//	+-----+-------+
//
// Cell widths are measured in terminal columns, so Cyrillic, CJK and emoji
// text all line up.
package table

import (
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

type Table struct {
	headers   []string
	rows      [][]string
	maxWidths map[int]int
	aligns    map[int]Align
}

func New(headers ...string) *Table {
	return &Table{
		headers:   headers,
		maxWidths: make(map[int]int),
		aligns:    make(map[int]Align),
	}
}

// SetMaxWidth wraps cell text of column col (zero-based) at width columns,
// splitting on spaces where it can. Zero or less removes the limit.
func (t *Table) SetMaxWidth(col, width int) {
	if width <= 0 {
		delete(t.maxWidths, col)
		return
	}
	t.maxWidths[col] = width
}

// SetAlign sets the alignment of data cells in column col. Headers stay
// centered.
func (t *Table) SetAlign(col int, align Align) {
	t.aligns[col] = align
}

// AddRow appends a row. Missing cells are blank and extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

func (t *Table) String() string {
	tw := prettytable.NewWriter()
	tw.SetStyle(prettytable.StyleDefault)
	tw.Style().Format.Header = text.FormatDefault

	tw.AppendHeader(toRow(t.headers))
	for _, row := range t.rows {
		tw.AppendRow(toRow(row))
	}

	configs := make([]prettytable.ColumnConfig, 0, len(t.headers))
	for col := range t.headers {
		cfg := prettytable.ColumnConfig{
			Number:      col + 1,
			Align:       t.aligns[col].text(),
			AlignHeader: text.AlignCenter,
		}
		if width, ok := t.maxWidths[col]; ok {
			cfg.WidthMax = width
			cfg.WidthMaxEnforcer = text.WrapSoft
		}
		configs = append(configs, cfg)
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func (a Align) text() text.Align {
	switch a {
	case AlignLeft:
		return text.AlignLeft
	case AlignRight:
		return text.AlignRight
	default:
		return text.AlignCenter
	}
}

func toRow(cells []string) prettytable.Row {
	row := make(prettytable.Row, len(cells))
	for i, cell := range cells {
		row[i] = cell
	}
	return row
}
