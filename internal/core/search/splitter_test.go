package search

import (
	"testing"

	"pdfcracker/internal/core/domain"
)

func TestSpaceSize(t *testing.T) {
	tests := []struct {
		variableLen int
		want        uint64
	}{
		{0, 1},
		{1, 10},
		{5, 100000},
		{6, 1000000},
	}

	for _, tt := range tests {
		if got := SpaceSize(tt.variableLen); got != tt.want {
			t.Errorf("SpaceSize(%d) = %d, want %d", tt.variableLen, got, tt.want)
		}
	}
}

func TestSplit_EvenDivision(t *testing.T) {
	total := SpaceSize(6)
	ranges := Split(total, 4)

	if len(ranges) != 4 {
		t.Fatalf("got %d ranges, want 4", len(ranges))
	}
	for i, r := range ranges {
		if r.Size() != 250000 {
			t.Errorf("range %d has size %d, want 250000", i, r.Size())
		}
	}
	assertExactCover(t, ranges, total)
}

func TestSplit_RemainderGoesToLastWorker(t *testing.T) {
	ranges := Split(100, 3)

	want := []domain.SearchRange{
		{Start: 0, End: 33},
		{Start: 33, End: 66},
		{Start: 66, End: 100},
	}

	if len(ranges) != len(want) {
		t.Fatalf("got %d ranges, want %d", len(ranges), len(want))
	}
	for i := range want {
		if ranges[i] != want[i] {
			t.Errorf("range %d = %+v, want %+v", i, ranges[i], want[i])
		}
	}
	assertExactCover(t, ranges, 100)
}

func TestSplit_MoreWorkersThanCandidates(t *testing.T) {
	ranges := Split(10, 17)

	if len(ranges) != 17 {
		t.Fatalf("got %d ranges, want 17", len(ranges))
	}

	var covered uint64
	empties := 0
	for _, r := range ranges {
		covered += r.Size()
		if r.Empty() {
			empties++
		}
	}
	if covered != 10 {
		t.Errorf("ranges cover %d candidates, want 10", covered)
	}
	if empties == 0 {
		t.Error("expected some empty ranges when workers exceed the space")
	}
	// chunk is 0, so all candidates land in the last range
	last := ranges[len(ranges)-1]
	if last.Size() != 10 {
		t.Errorf("last range has size %d, want 10", last.Size())
	}
}

func TestSplit_SingleWorker(t *testing.T) {
	ranges := Split(1000, 1)
	if len(ranges) != 1 || ranges[0].Start != 0 || ranges[0].End != 1000 {
		t.Errorf("Split(1000, 1) = %+v, want one range [0,1000)", ranges)
	}
}

// assertExactCover verifies the partition invariant: contiguous, disjoint,
// first range starts at 0 and the last ends at total.
func assertExactCover(t *testing.T, ranges []domain.SearchRange, total uint64) {
	t.Helper()

	if ranges[0].Start != 0 {
		t.Errorf("first range starts at %d, want 0", ranges[0].Start)
	}
	for i := 1; i < len(ranges); i++ {
		if ranges[i].Start != ranges[i-1].End {
			t.Errorf("gap or overlap between range %d and %d: %+v -> %+v",
				i-1, i, ranges[i-1], ranges[i])
		}
	}
	if end := ranges[len(ranges)-1].End; end != total {
		t.Errorf("last range ends at %d, want %d", end, total)
	}
}
