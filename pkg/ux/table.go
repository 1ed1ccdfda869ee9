// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintKeyValueTable renders rows as a two-column table with a header.
func (ul *UserLog) PrintKeyValueTable(header [2]string, rows [][2]string) error {
	table := tablewriter.NewTable(ul.writer,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)
	table.Header(header[0], header[1])
	for _, row := range rows {
		if err := table.Append([]string{row[0], row[1]}); err != nil {
			return err
		}
	}
	return table.Render()
}

// PrintTable renders a table with arbitrary columns.
func (ul *UserLog) PrintTable(headers []string, rows [][]string) error {
	table := tablewriter.NewTable(ul.writer, tablewriter.WithRowAlignment(tw.AlignLeft))
	anyHeaders := make([]any, len(headers))
	for i, h := range headers {
		anyHeaders[i] = h
	}
	table.Header(anyHeaders...)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
