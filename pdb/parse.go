package pdb

import "strings"

// RecordKind classifies a single line of a PDB file.
type RecordKind int

const (
	Unrecognized RecordKind = iota
	ModelStart
	ModelEnd
	Remark
	Link
	ProteinAtom
	HetAtom
)

// Record is one classified input line. Atom is set for ProteinAtom and
// HetAtom records only.
type Record struct {
	Kind RecordKind
	Line string
	Atom *Atom
}

// Classify decodes one line into a typed record. Malformed ATOM/HETATM
// lines come back as Unrecognized rather than as an error.
func Classify(line string) Record {
	name := line
	if len(name) > 6 {
		name = name[:6]
	}

	switch {
	case strings.HasPrefix(name, "MODEL"):
		return Record{Kind: ModelStart, Line: line}
	case strings.HasPrefix(name, "ENDMDL"):
		return Record{Kind: ModelEnd, Line: line}
	case strings.HasPrefix(name, "REMARK"):
		return Record{Kind: Remark, Line: line}
	case strings.HasPrefix(name, "LINK"):
		return Record{Kind: Link, Line: line}
	case name == "ATOM  ":
		if atom, ok := parseAtom(line, false); ok {
			return Record{Kind: ProteinAtom, Line: atom.Line, Atom: atom}
		}
		return Record{Kind: Unrecognized, Line: line}
	case name == "HETATM":
		if atom, ok := parseAtom(line, true); ok {
			return Record{Kind: HetAtom, Line: atom.Line, Atom: atom}
		}
		return Record{Kind: Unrecognized, Line: line}
	}

	return Record{Kind: Unrecognized, Line: line}
}

// Records scans raw PDB text line by line and returns the records of the
// first model. The scan has two states: it reads until the first ENDMDL,
// then stops for good. MODEL markers themselves are not returned; a second
// MODEL start never appears because the first ENDMDL already ended the scan.
func Records(raw []byte) []Record {
	var records []Record

	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		rec := Classify(line)
		switch rec.Kind {
		case ModelEnd:
			return records
		case ModelStart, Unrecognized:
			continue
		}
		records = append(records, rec)
	}

	return records
}
