// Package hotspot joins an external accessibility table against occlusion
// results to propose exposed, non-occluded surface residues.
package hotspot

import (
	"github.com/richieYT-wan/RFantibody/sasa"
)

// ResidueID identifies a residue by original (unrenumbered) chain and
// number, the key shared by the occlusion report and the table.
type ResidueID struct {
	Chain  string
	Number int
}

// Hotspot is a candidate surface residue.
type Hotspot struct {
	Aa     string
	Chain  string
	Number int
	Rel    float64
	Abs    float64
	HasAbs bool
}

// Numberer remaps an original residue number within a chain. The cleaning
// pass's renumber map implements it, so table residues get the same new
// numbers as their atom records.
type Numberer interface {
	Renumber(chain string, number int) int
}

// Select returns the residues whose relative accessibility exceeds the
// threshold and which are absent from the occluded set. The chain filter is
// applied to the table exactly as to the protein stream. The occluded
// lookup always uses original numbers; renumbering, when enabled, is
// applied afterwards via renum.
func Select(table sasa.Table, occluded map[ResidueID]bool, threshold float64, chains map[string]bool, renum Numberer) []Hotspot {
	filtered := make(sasa.Table, 0, len(table))
	for _, rec := range table {
		if chains != nil && !chains[rec.Chain] {
			continue
		}
		filtered = append(filtered, rec)
	}
	filtered.Sort()

	var spots []Hotspot
	for _, rec := range filtered {
		if rec.Rel <= threshold {
			continue
		}
		if occluded[ResidueID{Chain: rec.Chain, Number: rec.Number}] {
			continue
		}

		number := rec.Number
		if renum != nil {
			number = renum.Renumber(rec.Chain, rec.Number)
		}
		spots = append(spots, Hotspot{
			Aa:     rec.Aa,
			Chain:  rec.Chain,
			Number: number,
			Rel:    rec.Rel,
			Abs:    rec.Abs,
			HasAbs: rec.HasAbs,
		})
	}

	return spots
}
