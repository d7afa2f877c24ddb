package goat

// AreSiblings reports whether two animals are litter siblings.
//
// Two animals are siblings iff they came out of the same delivery
// (same breeding reference) AND share the same mother reference.
// The breeding reference alone is not sufficient: a litter identifier
// is only unique in combination with the mother, and matching on it
// alone can conflate unrelated animals when identifiers are reused.
func AreSiblings(a, b *Goat) bool {
	if a == nil || b == nil || a.ID() == b.ID() {
		return false
	}
	if a.BreedingID() == nil || b.BreedingID() == nil {
		return false
	}
	if a.MotherID() == nil || b.MotherID() == nil {
		return false
	}
	return *a.BreedingID() == *b.BreedingID() && *a.MotherID() == *b.MotherID()
}
