package search

import "pdfcracker/internal/core/domain"

// SpaceSize returns the number of candidate passwords for a variable part
// of the given digit width, i.e. 10^variableLen.
func SpaceSize(variableLen int) uint64 {
	total := uint64(1)
	for i := 0; i < variableLen; i++ {
		total *= 10
	}
	return total
}

// Split divides [0, total) into workerCount contiguous, non-overlapping
// ranges. The last range absorbs the division remainder so the ranges cover
// total exactly. When workerCount exceeds total some ranges come back empty,
// which workers treat as a no-op.
//
// Callers must ensure workerCount >= 1.
func Split(total uint64, workerCount int) []domain.SearchRange {
	chunk := total / uint64(workerCount)
	ranges := make([]domain.SearchRange, workerCount)

	for i := range ranges {
		start := uint64(i) * chunk
		end := start + chunk
		if i == workerCount-1 {
			end = total
		}
		ranges[i] = domain.SearchRange{Start: start, End: end}
	}

	return ranges
}
