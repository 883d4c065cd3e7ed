package pdb

import (
	"strconv"
	"strings"
)

// lineWidth is the fixed record width of the PDB format. Shorter lines are
// right-padded before field extraction so missing trailing fields read as
// blank.
const lineWidth = 80

// Atom represents a single retained atomic observation from an ATOM or
// HETATM record. Line holds the padded original text so records can be
// re-emitted losslessly with in-place field edits.
type Atom struct {
	Het           bool
	Name          string
	AltLoc        byte
	Residue       string
	Chain         string
	ResidueNumber int
	ICode         byte
	X             float64
	Y             float64
	Z             float64
	Element       string
	Line          string
}

// pad right-pads a line with spaces up to the fixed record width.
func pad(line string) string {
	if len(line) >= lineWidth {
		return line
	}
	return line + strings.Repeat(" ", lineWidth-len(line))
}

// parseAtom extracts the fixed-column fields of an ATOM or HETATM line.
// https://www.wwpdb.org/documentation/file-format-content/format23/sect9.html#ATOM
//
// Lines whose residue number or coordinates are not numeric are rejected,
// not fatal: the caller treats them as unrecognized.
func parseAtom(line string, het bool) (*Atom, bool) {
	line = pad(line)

	num, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return nil, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	if err != nil {
		return nil, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	if err != nil {
		return nil, false
	}
	z, err := strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	if err != nil {
		return nil, false
	}

	atom := Atom{
		Het:           het,
		Name:          strings.TrimSpace(line[12:16]),
		AltLoc:        line[16],
		Residue:       strings.TrimSpace(line[17:20]),
		Chain:         line[21:22],
		ResidueNumber: num,
		ICode:         line[26],
		X:             x,
		Y:             y,
		Z:             z,
		Element:       strings.TrimSpace(line[76:78]),
		Line:          line,
	}

	return &atom, true
}
