package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// MergeScores merges an external score table (the tab- or
// whitespace-separated .sc format) into the entries by identifier. The ID
// column is auto-detected as the one matching the most entry IDs; when both
// sources carry the same score name, the table value wins.
func MergeScores(entries []Entry, scorePath string) error {
	raw, err := os.ReadFile(scorePath)
	if err != nil {
		return fmt.Errorf("read scores %s: %v", scorePath, err)
	}

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) < 2 {
		return fmt.Errorf("score table %s has no rows", scorePath)
	}

	split := func(line string) []string {
		if strings.ContainsRune(lines[0], '\t') {
			return strings.Split(line, "\t")
		}
		return strings.Fields(line)
	}

	header := split(lines[0])
	for i, name := range header {
		header[i] = normalizeColName(name)
	}

	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, split(line))
	}

	ids := make(map[string]bool, len(entries))
	for _, entry := range entries {
		ids[entry.ID] = true
	}

	idCol, bestHits := 0, -1
	for col := range header {
		hits := 0
		for _, row := range rows {
			if col < len(row) && ids[strings.TrimSpace(row[col])] {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			idCol = col
		}
	}

	byID := make(map[string][]string, len(rows))
	for _, row := range rows {
		if idCol < len(row) {
			id := strings.TrimSpace(row[idCol])
			if _, ok := byID[id]; !ok {
				byID[id] = row
			}
		}
	}

	for i := range entries {
		row, ok := byID[entries[i].ID]
		if !ok {
			continue
		}
		for col, name := range header {
			if col == idCol || col >= len(row) {
				continue
			}
			entries[i].Scores[name] = strings.TrimSpace(row[col])
		}
	}

	return nil
}

// WriteTable writes one row per entry. A .csv extension selects
// comma-separated output, anything else is tab-separated.
func WriteTable(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write table %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if strings.ToLower(filepath.Ext(path)) != ".csv" {
		w.Comma = '\t'
	}

	scoreCols := make(map[string]bool)
	for _, entry := range entries {
		for name := range entry.Scores {
			scoreCols[name] = true
		}
	}
	sortedScores := make([]string, 0, len(scoreCols))
	for name := range scoreCols {
		sortedScores = append(sortedScores, name)
	}
	sort.Strings(sortedScores)

	header := []string{
		"id", "vh", "t",
		"H1_start", "H1_end", "H2_start", "H2_end", "H3_start", "H3_end",
		"labels_json",
	}
	header = append(header, sortedScores...)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, entry := range entries {
		row := []string{entry.ID, entry.Heavy, entry.Target}
		for _, label := range []string{"H1", "H2", "H3"} {
			if min, max, ok := labelRange(entry.Labels, label); ok {
				row = append(row, strconv.Itoa(min), strconv.Itoa(max))
			} else {
				row = append(row, "", "")
			}
		}
		labels, _ := json.Marshal(entry.Labels)
		row = append(row, string(labels))
		for _, name := range sortedScores {
			row = append(row, entry.Scores[name])
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}
