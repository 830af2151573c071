// Package oracle abstracts the human decisions the pipeline blocks on:
// picking the survivor of a duplicate group and supplying a replacement
// for an invalid resource label. Production binds the oracle to the
// terminal; tests bind it to a scripted sequence of answers.
package oracle

// Candidate is one member of a duplicate group presented for a
// decision: its display name and the distance to the group's anchor.
type Candidate struct {
	Label    string
	Distance int
}

// Oracle supplies the two human decisions the pipeline needs. Both
// calls block until an answer is available; there is no timeout and no
// cancellation.
type Oracle interface {
	// ChooseSurvivor returns the 1-based index of the group member to
	// keep. An out-of-range answer causes the caller to ask again.
	ChooseSurvivor(group []Candidate) int

	// ReplacementLabel returns a new label for a resource whose current
	// label failed normalization.
	ReplacementLabel(invalid string) string
}
