package clean

import (
	"strings"

	"github.com/richieYT-wan/RFantibody/pdb"
)

// waterNames are always dropped from the heteroatom stream, regardless of
// the ligand allow-set.
var waterNames = map[string]bool{
	"HOH": true,
	"DOD": true,
	"WAT": true,
	"H2O": true,
	"SOL": true,
}

// streams holds the filtered record streams all downstream components
// consume. Input order is preserved: chain-break placement and renumbering
// depend on it.
type streams struct {
	remarks []string
	links   []string
	protein []*pdb.Atom
	ligands []*pdb.Atom
}

// filter applies the per-record predicate chain: record-kind routing,
// alternate-location resolution, hydrogen exclusion, chain membership for
// protein atoms, water and ligand-set membership for heteroatoms. Kept
// atoms have their altloc field normalized to blank.
func (o Options) filter(records []pdb.Record) streams {
	var st streams

	for _, rec := range records {
		switch rec.Kind {
		case pdb.Remark:
			st.remarks = append(st.remarks, rec.Line)
			continue
		case pdb.Link:
			st.links = append(st.links, rec.Line)
			continue
		case pdb.ProteinAtom, pdb.HetAtom:
		default:
			continue
		}

		atom := rec.Atom
		if atom.AltLoc != ' ' {
			if atom.AltLoc != o.KeepAltLoc {
				continue
			}
			atom.Line = atom.Line[:16] + " " + atom.Line[17:]
			atom.AltLoc = ' '
		}

		if !o.KeepHydrogens && isHydrogen(atom) {
			continue
		}

		if atom.Het {
			if waterNames[atom.Residue] {
				continue
			}
			if o.Ligands != nil && !o.Ligands[atom.Residue] {
				continue
			}
			st.ligands = append(st.ligands, atom)
		} else {
			if o.Chains != nil && !o.Chains[atom.Chain] {
				continue
			}
			st.protein = append(st.protein, atom)
		}
	}

	return st
}

// isHydrogen is a best-effort heuristic, not a chemistry-aware classifier:
// trust the element field when present, otherwise fall back to the atom
// name prefix.
func isHydrogen(atom *pdb.Atom) bool {
	switch strings.ToUpper(atom.Element) {
	case "H", "D":
		return true
	case "":
		return strings.HasPrefix(atom.Name, "H")
	}
	return false
}
