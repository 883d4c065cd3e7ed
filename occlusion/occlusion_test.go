package occlusion

import (
	"testing"

	"github.com/richieYT-wan/RFantibody/pdb"
)

func protAtom(chain string, num int, name string, x, y, z float64) *pdb.Atom {
	return &pdb.Atom{Name: name, Residue: "ALA", Chain: chain, ResidueNumber: num, ICode: ' ', X: x, Y: y, Z: z}
}

func ligAtom(name string, chain string, num int, x, y, z float64) *pdb.Atom {
	return &pdb.Atom{Het: true, Name: "C1", Residue: name, Chain: chain, ResidueNumber: num, ICode: ' ', X: x, Y: y, Z: z}
}

func TestComputeMinimum(t *testing.T) {
	protein := []*pdb.Atom{
		protAtom("A", 1, "N", 10, 0, 0),
		protAtom("A", 1, "CA", 3, 0, 0),
	}
	ligands := []*pdb.Atom{
		ligAtom("LIG", "B", 1, 0, 0, 0),
		ligAtom("LIG", "B", 1, 100, 0, 0),
	}

	entries := Compute(protein, ligands)
	key := ResidueKey{Chain: "A", Number: 1, ICode: ' ', Name: "ALA"}
	entry, ok := entries[key]
	if !ok {
		t.Fatalf("expected an entry for residue A 1")
	}
	if entry.Distance != 3 {
		t.Errorf("expected minimum distance 3, got %f", entry.Distance)
	}

	// the minimum is never an over-estimate of any individual pair
	for _, p := range protein {
		for _, l := range ligands {
			if entry.Distance > pdb.Distance(p, l)+1e-12 {
				t.Errorf("minimum %f exceeds pair distance %f", entry.Distance, pdb.Distance(p, l))
			}
		}
	}
}

func TestTieGoesToFirstLigandAtom(t *testing.T) {
	protein := []*pdb.Atom{protAtom("A", 1, "CA", 0, 0, 0)}
	ligands := []*pdb.Atom{
		ligAtom("FST", "B", 1, 2, 0, 0),
		ligAtom("SND", "B", 2, 0, 2, 0),
	}

	entries := Compute(protein, ligands)
	entry := entries[ResidueKey{Chain: "A", Number: 1, ICode: ' ', Name: "ALA"}]
	if entry.Ligand.Name != "FST" {
		t.Errorf("expected tie broken by file order (FST), got %s", entry.Ligand.Name)
	}
}

func TestNoLigands(t *testing.T) {
	protein := []*pdb.Atom{protAtom("A", 1, "CA", 0, 0, 0)}
	entries := Compute(protein, nil)
	if len(entries) != 0 {
		t.Errorf("expected no entries without ligand atoms, got %d", len(entries))
	}
}

func TestOccludedCutoffInclusive(t *testing.T) {
	protein := []*pdb.Atom{
		protAtom("A", 1, "CA", 4, 0, 0),
		protAtom("A", 2, "CA", 4.001, 0, 0),
	}
	ligands := []*pdb.Atom{ligAtom("LIG", "B", 1, 0, 0, 0)}

	occluded := Occluded(Compute(protein, ligands), 4.0)
	if len(occluded) != 1 {
		t.Fatalf("expected exactly 1 occluded residue, got %d", len(occluded))
	}
	if occluded[0].Residue.Number != 1 {
		t.Errorf("expected residue 1 at exactly the cutoff, got %d", occluded[0].Residue.Number)
	}
}

func TestOccludedOrder(t *testing.T) {
	protein := []*pdb.Atom{
		protAtom(" ", 1, "CA", 1, 0, 0),
		protAtom("B", 2, "CA", 1, 0, 0),
		protAtom("A", 9, "CA", 1, 0, 0),
		protAtom("A", 3, "CA", 1, 0, 0),
	}
	ligands := []*pdb.Atom{ligAtom("LIG", "C", 1, 0, 0, 0)}

	occluded := Occluded(Compute(protein, ligands), 4.0)
	if len(occluded) != 4 {
		t.Fatalf("expected 4 occluded residues, got %d", len(occluded))
	}
	var got []string
	for _, entry := range occluded {
		got = append(got, entry.Residue.Chain)
	}

	want := []string{"A", "A", "B", " "}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected chain order %v, got %v", want, got)
		}
	}
	if occluded[0].Residue.Number != 3 || occluded[1].Residue.Number != 9 {
		t.Errorf("expected residues within a chain ordered by number")
	}
}
