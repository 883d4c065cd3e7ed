package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func atomLine(serial int, name string, res string, chain byte, num int, x, y, z float64, element string) string {
	return fmt.Sprintf("ATOM  %5d %-4s %3s %c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s",
		serial, name, res, chain, num, x, y, z, 1.0, 0.0, element)
}

func writeOutputPDB(t *testing.T, dir, name string) string {
	t.Helper()
	lines := []string{
		"REMARK PDBinfo-LABEL:    5 H1",
		"REMARK PDBinfo-LABEL:    7 H1",
		"REMARK PDBinfo-LABEL:    6 H1",
		"REMARK PDBinfo-LABEL:   20 H3",
		atomLine(1, "CA", "GLY", 'H', 1, 0, 0, 0, "C"),
		atomLine(2, "CA", "ALA", 'H', 2, 1, 0, 0, "C"),
		atomLine(3, "CA", "TRP", 'T', 1, 2, 0, 0, "C"),
		"TER",
		"SCORE binder_plddt: 0.912",
		"SCORE pae interaction: 7.25",
		"SCORE comment: nan",
		"END",
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeOutputPDB(t, dir, "design_0001.pdb")

	entry, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if entry.ID != "design_0001" {
		t.Errorf("expected id design_0001, got %q", entry.ID)
	}
	if entry.Heavy != "GA" {
		t.Errorf("expected heavy chain sequence GA, got %q", entry.Heavy)
	}
	if entry.Target != "W" {
		t.Errorf("expected target sequence W, got %q", entry.Target)
	}

	wantLabels := map[string][]int{"H1": {5, 6, 7}, "H3": {20}}
	if diff := cmp.Diff(wantLabels, entry.Labels); diff != "" {
		t.Errorf("unexpected labels (-want +got):\n%s", diff)
	}

	wantScores := map[string]string{
		"binder_plddt":    "0.912",
		"pae_interaction": "7.25",
		"comment":         "nan",
	}
	if diff := cmp.Diff(wantScores, entry.Scores); diff != "" {
		t.Errorf("unexpected scores (-want +got):\n%s", diff)
	}
}

func TestLabelRange(t *testing.T) {
	labels := map[string][]int{"H1": {5, 6, 7}}
	min, max, ok := labelRange(labels, "H1")
	if !ok || min != 5 || max != 7 {
		t.Errorf("expected range 5-7, got %d-%d (%v)", min, max, ok)
	}
	if _, _, ok := labelRange(labels, "H2"); ok {
		t.Errorf("expected missing label to report !ok")
	}
}

func TestParseDirAndMergeScores(t *testing.T) {
	dir := t.TempDir()
	writeOutputPDB(t, dir, "design_0001.pdb")
	writeOutputPDB(t, dir, "design_0002.pdb")

	entries, err := ParseDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "design_0001" || entries[1].ID != "design_0002" {
		t.Errorf("expected entries sorted by name, got %s, %s", entries[0].ID, entries[1].ID)
	}

	sc := "description\tbinder_plddt\ttotal_score\n" +
		"design_0002\t0.5\t-12.3\n" +
		"design_0001\t0.99\t-45.6\n"
	scPath := filepath.Join(dir, "scores.sc")
	if err := os.WriteFile(scPath, []byte(sc), 0644); err != nil {
		t.Fatal(err)
	}

	if err := MergeScores(entries, scPath); err != nil {
		t.Fatal(err)
	}

	// the .sc value wins over the PDB SCORE line
	if entries[0].Scores["binder_plddt"] != "0.99" {
		t.Errorf("expected merged binder_plddt 0.99, got %q", entries[0].Scores["binder_plddt"])
	}
	if entries[1].Scores["total_score"] != "-12.3" {
		t.Errorf("expected total_score -12.3, got %q", entries[1].Scores["total_score"])
	}
}

func TestParseDirEmpty(t *testing.T) {
	if _, err := ParseDir(t.TempDir()); err == nil {
		t.Errorf("expected an error for a directory without .pdb files")
	}
}

func TestWriteTable(t *testing.T) {
	dir := t.TempDir()
	writeOutputPDB(t, dir, "design_0001.pdb")
	entries, err := ParseDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "table.tsv")
	if err := WriteTable(out, entries); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}

	header := strings.Split(lines[0], "\t")
	row := strings.Split(lines[1], "\t")
	cols := make(map[string]string, len(header))
	for i, name := range header {
		if i < len(row) {
			cols[name] = row[i]
		}
	}

	if cols["id"] != "design_0001" || cols["vh"] != "GA" || cols["t"] != "W" {
		t.Errorf("unexpected core columns: %v", cols)
	}
	if cols["H1_start"] != "5" || cols["H1_end"] != "7" {
		t.Errorf("unexpected H1 range: %v", cols)
	}
	if cols["H2_start"] != "" {
		t.Errorf("expected blank H2 range, got %q", cols["H2_start"])
	}
	if cols["binder_plddt"] != "0.912" {
		t.Errorf("expected score column in table, got %v", cols)
	}
}
