package clean

type renumberKey struct {
	chain  string
	number int
	icode  byte
}

// Renumbering maps (chain, original number, insertion code) triples to new
// dense per-chain numbers starting at 1, assigned in first-encounter order.
// Two triples differing only in insertion code get distinct new numbers.
type Renumbering struct {
	assigned map[renumberKey]int
	next     map[string]int
}

func newRenumbering() *Renumbering {
	return &Renumbering{
		assigned: make(map[renumberKey]int),
		next:     make(map[string]int),
	}
}

// assign returns the new number for the triple, allocating the chain's next
// unused integer on first encounter.
func (r *Renumbering) assign(chain string, number int, icode byte) int {
	key := renumberKey{chain: chain, number: number, icode: icode}
	if n, ok := r.assigned[key]; ok {
		return n
	}
	r.next[chain]++
	r.assigned[key] = r.next[chain]
	return r.next[chain]
}

// Renumber remaps an original residue number with a blank insertion code.
// Residues never seen in the atom stream extend the same per-chain
// counters, so the accessibility table and the atom records share one
// numbering scheme.
func (r *Renumbering) Renumber(chain string, number int) int {
	return r.assign(chain, number, ' ')
}
