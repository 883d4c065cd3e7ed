// Package clean implements the cleaning pass: it filters and renumbers the
// atom records of the first model of a PDB file, computes ligand occlusion
// distances, and re-emits the structure with annotation stanzas, chain-break
// markers and an end-of-structure marker.
package clean

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/richieYT-wan/RFantibody/hotspot"
	"github.com/richieYT-wan/RFantibody/occlusion"
	"github.com/richieYT-wan/RFantibody/pdb"
	"github.com/richieYT-wan/RFantibody/sasa"
)

// Result is the outcome of one cleaning pass.
type Result struct {
	// Lines is the complete output file, in order: remark pass-through,
	// annotation stanzas, atom records with TER markers, END.
	Lines []string

	// Occluded lists the occluded residues in reporting order.
	Occluded []occlusion.Entry

	// Hotspots lists candidate surface residues, when a table was supplied.
	Hotspots []hotspot.Hotspot

	// Renumbering is the applied residue number mapping; nil when
	// renumbering is off.
	Renumbering *Renumbering

	// AtomLines is the number of emitted atom records. It always equals the
	// number of protein records surviving the filter chain.
	AtomLines int
}

// Clean runs the cleaning pass over raw PDB text. Ligand atoms drive the
// occlusion computation but are never re-emitted as structural records.
func Clean(raw []byte, opts Options) (*Result, error) {
	st := opts.filter(pdb.Records(raw))

	entries := occlusion.Compute(st.protein, st.ligands)
	occluded := occlusion.Occluded(entries, opts.Cutoff)

	var renum *Renumbering
	if opts.Renumber {
		renum = newRenumbering()
		for _, atom := range st.protein {
			renum.assign(atom.Chain, atom.ResidueNumber, atom.ICode)
		}
	}

	var spots []hotspot.Hotspot
	if opts.RSAThreshold > 0 {
		table := opts.SASATable
		if table == nil && opts.SASAPath != "" {
			var err error
			table, err = sasa.ReadTable(opts.SASAPath)
			if err != nil {
				return nil, err
			}
		}
		if table != nil {
			spots = selectHotspots(table, occluded, opts, renum)
		}
	}

	lines := annotationBlock(st, occluded, spots)
	lines = append(lines, serialize(st.protein, renum)...)

	return &Result{
		Lines:       lines,
		Occluded:    occluded,
		Hotspots:    spots,
		Renumbering: renum,
		AtomLines:   len(st.protein),
	}, nil
}

// CleanFile reads a structure file, runs the cleaning pass, and writes the
// result. An unreadable input path is the one fatal input error.
func CleanFile(inPath, outPath string, opts Options) error {
	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("input file not found: %s", inPath)
	}
	defer f.Close()

	raw, err := readAll(f)
	if err != nil {
		return fmt.Errorf("read %s: %v", inPath, err)
	}

	result, err := Clean(raw, opts)
	if err != nil {
		return err
	}

	out := strings.Join(result.Lines, "\n") + "\n"
	if err := os.WriteFile(outPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("write %s: %v", outPath, err)
	}

	return nil
}

// readAll slurps a file through a read-only memory map, falling back to a
// plain read when the file cannot be mapped (e.g. it is empty).
func readAll(f *os.File) ([]byte, error) {
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return io.ReadAll(f)
	}
	defer mm.Unmap()

	raw := make([]byte, len(mm))
	copy(raw, mm)
	return raw, nil
}

// selectHotspots joins the accessibility table against the occluded set,
// which is keyed by original chain and number.
func selectHotspots(table sasa.Table, occluded []occlusion.Entry, opts Options, renum *Renumbering) []hotspot.Hotspot {
	set := make(map[hotspot.ResidueID]bool, len(occluded))
	for _, entry := range occluded {
		set[hotspot.ResidueID{Chain: entry.Residue.Chain, Number: entry.Residue.Number}] = true
	}

	var numberer hotspot.Numberer
	if renum != nil {
		numberer = renum
	}
	return hotspot.Select(table, set, opts.RSAThreshold, opts.Chains, numberer)
}

// serialize emits the retained protein atom lines in original order,
// rewriting the residue-number field when renumbering, with a TER marker at
// every chain transition, one trailing TER and a final END.
func serialize(protein []*pdb.Atom, renum *Renumbering) []string {
	var lines []string

	prevChain := ""
	for _, atom := range protein {
		line := atom.Line
		if renum != nil {
			n := renum.assign(atom.Chain, atom.ResidueNumber, atom.ICode)
			line = line[:22] + fmt.Sprintf("%4d", n) + line[26:]
		}
		if prevChain != "" && atom.Chain != prevChain {
			lines = append(lines, "TER")
		}
		prevChain = atom.Chain
		lines = append(lines, line)
	}

	if len(lines) > 0 {
		lines = append(lines, "TER")
	}
	lines = append(lines, "END")

	return lines
}
