// Package occlusion computes, for every protein residue, the minimum
// distance to any retained ligand atom and which ligand residue produced it.
package occlusion

import (
	"sort"

	"github.com/richieYT-wan/RFantibody/pdb"
)

// ResidueKey identifies a protein residue.
type ResidueKey struct {
	Chain  string
	Number int
	ICode  byte
	Name   string
}

// LigandKey identifies a ligand residue.
type LigandKey struct {
	Name   string
	Chain  string
	Number int
	ICode  byte
}

// Entry is the minimum distance observed between a protein residue and any
// ligand atom, together with the ligand residue that produced it.
type Entry struct {
	Residue  ResidueKey
	Distance float64
	Ligand   LigandKey
}

func residueKey(a *pdb.Atom) ResidueKey {
	return ResidueKey{Chain: a.Chain, Number: a.ResidueNumber, ICode: a.ICode, Name: a.Residue}
}

func ligandKey(a *pdb.Atom) LigandKey {
	return LigandKey{Name: a.Residue, Chain: a.Chain, Number: a.ResidueNumber, ICode: a.ICode}
}

// Compute scans all protein/ligand atom pairs and returns one entry per
// protein residue holding the minimum distance found. No spatial index:
// ligand atom counts are small relative to protein atom counts. The update
// rule is strict less-than, so ties go to the ligand atom encountered first
// in file order. With no ligand atoms the result is empty.
func Compute(protein, ligands []*pdb.Atom) map[ResidueKey]Entry {
	entries := make(map[ResidueKey]Entry)
	if len(ligands) == 0 {
		return entries
	}

	for _, atom := range protein {
		key := residueKey(atom)
		entry, seen := entries[key]
		for _, lig := range ligands {
			dist := pdb.Distance(atom, lig)
			if !seen || dist < entry.Distance {
				entry = Entry{Residue: key, Distance: dist, Ligand: ligandKey(lig)}
				seen = true
			}
		}
		entries[key] = entry
	}

	return entries
}

// Occluded returns the entries within the cutoff (inclusive), in reporting
// order: chain, residue number, insertion code, then distance.
func Occluded(entries map[ResidueKey]Entry, cutoff float64) []Entry {
	var occluded []Entry
	for _, entry := range entries {
		if entry.Distance <= cutoff {
			occluded = append(occluded, entry)
		}
	}

	sort.Slice(occluded, func(i, j int) bool {
		ri, rj := occluded[i].Residue, occluded[j].Residue
		if ri.Chain != rj.Chain {
			return pdb.ChainLess(ri.Chain, rj.Chain)
		}
		if ri.Number != rj.Number {
			return ri.Number < rj.Number
		}
		if ri.ICode != rj.ICode {
			return ri.ICode < rj.ICode
		}
		return occluded[i].Distance < occluded[j].Distance
	})

	return occluded
}
