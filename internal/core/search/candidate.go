package search

import "pdfcracker/internal/core/domain"

// Candidate returns the full password for a candidate index: the index
// rendered as the zero-padded variable part, composed with the fixed part.
func Candidate(fixed domain.FixedPart, idx uint64) string {
	return fixed.Compose(renderVariable(idx, fixed.VariableLen()))
}

// renderVariable writes idx as a zero-padded decimal string of the given
// width (decimal positional expansion, most significant digit first).
func renderVariable(idx uint64, width int) string {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = '0' + byte(idx%10)
		idx /= 10
	}
	return string(buf)
}
