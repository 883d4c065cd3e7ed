package clean

import (
	"fmt"
	"strings"

	"github.com/richieYT-wan/RFantibody/hotspot"
	"github.com/richieYT-wan/RFantibody/occlusion"
)

const lineWidth = 80

func trunc(line string) string {
	if len(line) > lineWidth {
		return line[:lineWidth]
	}
	return line
}

// resID renders a chain, residue number and insertion code for a REMARK
// payload. Blank insertion codes are omitted.
func resID(chain string, number int, icode byte) string {
	s := fmt.Sprintf("%s %d", chain, number)
	if icode != ' ' && icode != 0 {
		s += string(icode)
	}
	return s
}

// annotationBlock builds the ordered annotation stanzas: original remark
// lines verbatim, then a two-line stanza per retained LINK record, per
// occluded residue and per hotspot. The stanzas use the REMARK 800
// SITE_IDENTIFIER/SITE_DESCRIPTION convention, bounded to 80 columns.
func annotationBlock(st streams, occluded []occlusion.Entry, spots []hotspot.Hotspot) []string {
	var lines []string

	lines = append(lines, st.remarks...)

	for _, link := range st.links {
		rest := link
		if len(rest) > 4 {
			rest = rest[4:]
		} else {
			rest = ""
		}
		lines = append(lines,
			"REMARK 800 SITE_IDENTIFIER: LINK",
			trunc("REMARK 800 SITE_DESCRIPTION: "+strings.TrimLeft(rest, " ")))
	}

	for _, entry := range occluded {
		r, l := entry.Residue, entry.Ligand
		lines = append(lines,
			trunc(fmt.Sprintf("REMARK 800 SITE_IDENTIFIER: OCC %s", resID(r.Chain, r.Number, r.ICode))),
			trunc(fmt.Sprintf("REMARK 800 SITE_DESCRIPTION: %s %s DIST %.2f LIGAND %s %s",
				r.Name, resID(r.Chain, r.Number, r.ICode),
				entry.Distance,
				l.Name, resID(l.Chain, l.Number, l.ICode))))
	}

	for _, spot := range spots {
		desc := "REMARK 800 SITE_DESCRIPTION: "
		if spot.Aa != "" {
			desc += spot.Aa + " "
		}
		desc += fmt.Sprintf("%s %d RSA %.4f", spot.Chain, spot.Number, spot.Rel)
		if spot.HasAbs {
			desc += fmt.Sprintf(" ASA %.2f", spot.Abs)
		}
		lines = append(lines,
			trunc(fmt.Sprintf("REMARK 800 SITE_IDENTIFIER: HOTSPOT %s %d", spot.Chain, spot.Number)),
			trunc(desc))
	}

	return lines
}
