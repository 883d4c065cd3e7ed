// Package dssp runs the external mkdssp tool and turns its per-residue
// output into an accessibility table.
package dssp

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/richieYT-wan/RFantibody/sasa"
)

// maxASA holds the maximum accessible surface area per residue type in A^2,
// used to normalise absolute accessibility into the 0-1 relative scale
// (Tien et al. 2013).
var maxASA = map[byte]float64{
	'A': 129, 'R': 274, 'N': 195, 'D': 193, 'C': 167,
	'Q': 225, 'E': 223, 'G': 104, 'H': 224, 'I': 197,
	'L': 201, 'K': 236, 'M': 224, 'F': 240, 'P': 159,
	'S': 155, 'T': 172, 'W': 285, 'Y': 263, 'V': 174,
}

// Run executes mkdssp on a structure file and parses the result. The dssp
// argument names the executable; pass "mkdssp" to use the one on PATH.
func Run(dssp, pdbPath string) (sasa.Table, error) {
	cmd := exec.Command(dssp, "-i", pdbPath)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("mkdssp: %v", err)
	}

	return parse(out), nil
}

// parse extracts chain, residue number, residue identity and accessibility
// from classic DSSP output.
// https://swift.cmbi.umcn.nl/gv/dssp/
func parse(out []byte) sasa.Table {
	var table sasa.Table

	start := false
	for _, l := range strings.Split(string(out), "\n") {
		if len(l) < 38 {
			continue
		}
		if !start {
			if l[2] == '#' {
				start = true
			}
			continue
		}

		posStr := strings.TrimSpace(l[5:10])
		if len(posStr) == 0 {
			// chain break line
			continue
		}
		pos, err := strconv.Atoi(posStr)
		if err != nil {
			continue
		}

		chain := string(l[11])
		aa := l[13]
		acc, err := strconv.ParseFloat(strings.TrimSpace(l[34:38]), 64)
		if err != nil {
			continue
		}

		rec := sasa.Record{
			Chain:  chain,
			Number: pos,
			Aa:     string(aa),
			Abs:    acc,
			HasAbs: true,
		}
		if max, ok := maxASA[aa]; ok {
			rec.Rel = acc / max
		}
		table = append(table, rec)
	}

	return table
}
