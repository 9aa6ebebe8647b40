package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// column is a table heading; numeric columns are right-aligned.
type column struct {
	title   string
	numeric bool
}

func col(title string) column { return column{title: title} }
func num(title string) column { return column{title: title, numeric: true} }
func mark() column { return column{} }

// listing accumulates rows for a rounded go-pretty table. Short rows are
// padded and empty cells render as "-", except in untitled marker columns.
type listing struct {
	columns []column
	rows    []table.Row
}

func newListing(columns ...column) *listing {
	return &listing{columns: columns}
}

func (l *listing) add(cells ...string) {
	row := make(table.Row, len(l.columns))
	for i, c := range l.columns {
		var value string
		if i < len(cells) {
			value = cells[i]
		}
		if value == "" && c.title != "" {
			value = "-"
		}
		row[i] = value
	}
	l.rows = append(l.rows, row)
}

func (l *listing) String() string {
	if len(l.columns) == 0 {
		return ""
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(l.columns))
	configs := make([]table.ColumnConfig, len(l.columns))
	for i, c := range l.columns {
		header[i] = c.title
		align := text.AlignLeft
		if c.numeric {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft}
	}
	tw.AppendHeader(header)
	tw.AppendRows(l.rows)
	tw.SetColumnConfigs(configs)
	return tw.Render()
}
