// Package table accumulates rows of named string columns in memory and
// writes them out once, as CSV or as an aligned plain text table.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// Row maps column names to values. Missing columns are written as empty
// strings.
type Row map[string]string

// Table is an ordered list of rows with a fixed set of columns.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given columns, in order.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Append adds a row to the end of the table. A row with a column the table
// doesn't have is rejected.
func (t *Table) Append(row Row) error {
	for col := range row {
		if !t.hasColumn(col) {
			return fmt.Errorf("unknown column '%s' (columns are %s)",
				col, strings.Join(t.Columns, ", "))
		}
	}
	t.Rows = append(t.Rows, row)
	return nil
}

func (t *Table) hasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

func (t *Table) record(row Row) []string {
	rec := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		rec[i] = row[col]
	}
	return rec
}

// WriteCSV writes a header line followed by every row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(t.record(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the table as CSV to the file at fpath, replacing it if it
// exists.
func (t *Table) WriteFile(fpath string) error {
	f, err := os.Create(fpath)
	if err != nil {
		return err
	}
	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// String returns the table with aligned columns and a leading row index,
// which is convenient for printing to a terminal.
func (t *Table) String() string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\t%s\n", strings.Join(t.Columns, "\t"))
	for i, row := range t.Rows {
		fmt.Fprintf(tw, "%d\t%s\n", i, strings.Join(t.record(row), "\t"))
	}
	tw.Flush()
	return b.String()
}
