package pdb

import "math"

// Distance returns the Euclidean distance between a pair of atoms.
func Distance(a1 *Atom, a2 *Atom) float64 {
	return math.Sqrt(math.Pow(a1.X-a2.X, 2) + math.Pow(a1.Y-a2.Y, 2) + math.Pow(a1.Z-a2.Z, 2))
}
