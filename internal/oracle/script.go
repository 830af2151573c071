package oracle

// Script is a canned Oracle for tests. Answers are consumed in order;
// running out of answers panics so an over-asking caller fails the
// test loudly instead of blocking it in a retry loop.
type Script struct {
	Choices []int
	Labels  []string

	// Invocation records, for asserting on how the oracle was used.
	ChooseCalls [][]Candidate
	LabelCalls  []string
}

func (s *Script) ChooseSurvivor(group []Candidate) int {
	copied := make([]Candidate, len(group))
	copy(copied, group)
	s.ChooseCalls = append(s.ChooseCalls, copied)

	if len(s.Choices) == 0 {
		panic("oracle script: out of survivor choices")
	}
	n := s.Choices[0]
	s.Choices = s.Choices[1:]
	return n
}

func (s *Script) ReplacementLabel(invalid string) string {
	s.LabelCalls = append(s.LabelCalls, invalid)

	if len(s.Labels) == 0 {
		panic("oracle script: out of replacement labels")
	}
	l := s.Labels[0]
	s.Labels = s.Labels[1:]
	return l
}
