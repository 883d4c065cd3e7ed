package pdb

// ChainLess orders chain identifiers for reporting: named chains sort
// alphabetically before the blank sentinel chain. An empty identifier is
// treated like the blank sentinel.
func ChainLess(a, b string) bool {
	if a == b {
		return false
	}
	if a == " " || a == "" {
		return false
	}
	if b == " " || b == "" {
		return true
	}
	return a < b
}
