// Package report parses directories of pipeline output PDBs into a single
// table: per-chain sequences, residue label ranges from REMARK
// PDBinfo-LABEL lines, and scores from trailing SCORE lines, optionally
// merged with an external score table by identifier.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/richieYT-wan/RFantibody/pdb"
)

var (
	labelRe = regexp.MustCompile(`^REMARK\s+PDBinfo-LABEL:\s*(\d+)\s+(\S+)\s*$`)
	scoreRe = regexp.MustCompile(`^SCORE\s+([^:]+):\s*(.+?)\s*$`)
)

// Entry is the parsed content of one output PDB: the heavy-chain (H) and
// target-chain (T) sequences, label names to sorted residue numbers, and
// normalized score names to values.
type Entry struct {
	ID     string
	Heavy  string
	Target string
	Labels map[string][]int
	Scores map[string]string
}

// ParseFile parses one output PDB into an Entry.
func ParseFile(path string) (Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("read %s: %v", path, err)
	}

	entry := Entry{
		ID:     stem(path),
		Labels: make(map[string][]int),
		Scores: make(map[string]string),
	}

	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		if m := labelRe.FindStringSubmatch(line); m != nil {
			num, _ := strconv.Atoi(m[1])
			entry.Labels[m[2]] = append(entry.Labels[m[2]], num)
			continue
		}
		if m := scoreRe.FindStringSubmatch(line); m != nil {
			entry.Scores[normalizeColName(m[1])] = strings.TrimSpace(m[2])
		}
	}
	for _, nums := range entry.Labels {
		sort.Ints(nums)
	}

	seqs := sequences(raw)
	entry.Heavy = seqs["H"]
	entry.Target = seqs["T"]

	return entry, nil
}

// ParseDir parses every .pdb file under dir, sorted by name.
func ParseDir(dir string) ([]Entry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.pdb"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no .pdb files found in %s", dir)
	}
	sort.Strings(paths)

	var entries []Entry
	for _, path := range paths {
		entry, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// sequences extracts per-chain amino-acid sequences from the first model,
// skipping heteroatoms. Residues are ordered by number and insertion code.
func sequences(raw []byte) map[string]string {
	type resKey struct {
		number int
		icode  byte
	}
	chains := make(map[string]map[resKey]byte)

	for _, rec := range pdb.Records(raw) {
		if rec.Kind != pdb.ProteinAtom {
			continue
		}
		atom := rec.Atom
		if chains[atom.Chain] == nil {
			chains[atom.Chain] = make(map[resKey]byte)
		}
		key := resKey{number: atom.ResidueNumber, icode: atom.ICode}
		if _, ok := chains[atom.Chain][key]; !ok {
			aa, known := pdb.AminoThreeToOne[atom.Residue]
			if !known {
				aa = 'X'
			}
			chains[atom.Chain][key] = aa
		}
	}

	seqs := make(map[string]string, len(chains))
	for chain, residues := range chains {
		keys := make([]resKey, 0, len(residues))
		for key := range residues {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].number != keys[j].number {
				return keys[i].number < keys[j].number
			}
			return keys[i].icode < keys[j].icode
		})
		var sb strings.Builder
		for _, key := range keys {
			sb.WriteByte(residues[key])
		}
		seqs[chain] = sb.String()
	}

	return seqs
}

// normalizeColName normalizes score column names across sources.
func normalizeColName(name string) string {
	s := strings.TrimSpace(name)
	s = strings.TrimRight(s, ":")
	return strings.Join(strings.Fields(s), "_")
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// labelRange returns the min and max residue number for a label, or ok
// false when the label is absent.
func labelRange(labels map[string][]int, name string) (min, max int, ok bool) {
	nums := labels[name]
	if len(nums) == 0 {
		return 0, 0, false
	}
	return nums[0], nums[len(nums)-1], true
}
