package clean

import (
	"strings"

	"github.com/richieYT-wan/RFantibody/sasa"
)

// Options is the configuration surface of a cleaning pass. All fields are
// orthogonal and independently toggleable.
type Options struct {
	// Chains to keep. Nil keeps all chains.
	Chains map[string]bool

	// Ligands is the heteroatom residue-name allow-set. Nil keeps all
	// non-water heteroatoms.
	Ligands map[string]bool

	// Cutoff is the occlusion distance cutoff, in the units of the input
	// coordinates. The comparison is inclusive.
	Cutoff float64

	// Renumber assigns dense per-chain residue numbers in first-encounter
	// order, starting at 1.
	Renumber bool

	// KeepAltLoc is the alternate-location code to retain besides blank.
	KeepAltLoc byte

	// KeepHydrogens disables the hydrogen exclusion heuristic.
	KeepHydrogens bool

	// SASAPath points to an accessibility table; together with
	// RSAThreshold it enables hotspot stanzas. SASATable supplies an
	// already-loaded table instead of a path.
	SASAPath     string
	SASATable    sasa.Table
	RSAThreshold float64
}

// DefaultOptions returns the default cleaning configuration: all chains,
// all non-water heteroatoms, 4.0 cutoff, renumbering on, altloc A kept,
// hydrogens dropped.
func DefaultOptions() Options {
	return Options{
		Cutoff:     4.0,
		Renumber:   true,
		KeepAltLoc: 'A',
	}
}

// ParseSet turns a comma-separated list into an allow-set. An empty list
// yields nil, which keeps everything.
func ParseSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			set[item] = true
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
