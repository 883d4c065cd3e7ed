// Package sasa reads per-residue solvent accessibility tables produced by
// an external collaborator (a DSSP wrapper or equivalent).
//
// The table is delimited text with a header. Required columns: chain,
// res_number, rsa (relative accessibility on a 0-1 scale). Optional
// columns: aa (residue identity) and asa (absolute accessibility).
package sasa

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/richieYT-wan/RFantibody/pdb"
)

// Record holds accessibility values for a single residue.
type Record struct {
	Chain  string
	Number int
	Aa     string
	Rel    float64
	Abs    float64
	HasAbs bool
}

// Table is a list of per-residue accessibility records.
type Table []Record

// ReadTable parses an accessibility table from a CSV or TSV file. A table
// missing any of the required columns is a fatal error; individual rows
// with non-numeric values are dropped.
func ReadTable(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read accessibility table: %v", err)
	}
	return parseTable(string(raw))
}

func parseTable(text string) (Table, error) {
	header := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		header = text[:i]
	}

	r := csv.NewReader(strings.NewReader(text))
	if strings.ContainsRune(header, '\t') {
		r.Comma = '\t'
	}
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse accessibility table: %v", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("accessibility table is empty")
	}

	cols := make(map[string]int)
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"chain", "res_number", "rsa"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("accessibility table: missing required column %q", required)
		}
	}

	field := func(row []string, name string) (string, bool) {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	var table Table
	for _, row := range rows[1:] {
		chain, _ := field(row, "chain")
		numStr, _ := field(row, "res_number")
		relStr, _ := field(row, "rsa")

		num, err := strconv.Atoi(numStr)
		if err != nil {
			continue
		}
		rel, err := strconv.ParseFloat(relStr, 64)
		if err != nil {
			continue
		}

		rec := Record{Chain: chain, Number: num, Rel: rel}
		if aa, ok := field(row, "aa"); ok {
			rec.Aa = aa
		}
		if absStr, ok := field(row, "asa"); ok {
			if abs, err := strconv.ParseFloat(absStr, 64); err == nil {
				rec.Abs = abs
				rec.HasAbs = true
			}
		}
		table = append(table, rec)
	}

	return table, nil
}

// WriteTable writes the table as CSV with the column layout ReadTable
// expects.
func WriteTable(path string, table Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write accessibility table: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"chain", "res_number", "aa", "rsa", "asa"}); err != nil {
		return err
	}
	for _, rec := range table {
		abs := ""
		if rec.HasAbs {
			abs = strconv.FormatFloat(rec.Abs, 'f', 2, 64)
		}
		row := []string{
			rec.Chain,
			strconv.Itoa(rec.Number),
			rec.Aa,
			strconv.FormatFloat(rec.Rel, 'f', 4, 64),
			abs,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

// Sort orders the table by chain (named chains before the blank sentinel)
// and residue number, for deterministic downstream processing.
func (t Table) Sort() {
	sort.SliceStable(t, func(i, j int) bool {
		if t[i].Chain != t[j].Chain {
			return pdb.ChainLess(t[i].Chain, t[j].Chain)
		}
		return t[i].Number < t[j].Number
	})
}
