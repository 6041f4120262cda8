package search

import (
	"testing"

	"pdfcracker/internal/core/domain"
)

func TestRenderVariable(t *testing.T) {
	tests := []struct {
		idx   uint64
		width int
		want  string
	}{
		{0, 6, "000000"},
		{1, 6, "000001"},
		{678901, 6, "678901"},
		{999999, 6, "999999"},
		{0, 5, "00000"},
		{42, 5, "00042"},
	}

	for _, tt := range tests {
		if got := renderVariable(tt.idx, tt.width); got != tt.want {
			t.Errorf("renderVariable(%d, %d) = %q, want %q", tt.idx, tt.width, got, tt.want)
		}
	}
}

func TestCandidate(t *testing.T) {
	tests := []struct {
		name  string
		fixed domain.FixedPart
		idx   uint64
		want  string
	}{
		{
			name:  "prefix",
			fixed: domain.FixedPart{Kind: domain.FixedPrefix, Digits: "12345"},
			idx:   678901,
			want:  "12345678901",
		},
		{
			name:  "prefix with leading zeros",
			fixed: domain.FixedPart{Kind: domain.FixedPrefix, Digits: "12345"},
			idx:   7,
			want:  "12345000007",
		},
		{
			name:  "suffix",
			fixed: domain.FixedPart{Kind: domain.FixedSuffix, Digits: "010199"},
			idx:   67890,
			want:  "67890010199",
		},
		{
			name:  "suffix at index zero",
			fixed: domain.FixedPart{Kind: domain.FixedSuffix, Digits: "311299"},
			idx:   0,
			want:  "00000311299",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Candidate(tt.fixed, tt.idx)
			if got != tt.want {
				t.Errorf("Candidate(%+v, %d) = %q, want %q", tt.fixed, tt.idx, got, tt.want)
			}
			if len(got) != domain.PasswordLength {
				t.Errorf("candidate %q has length %d, want %d", got, len(got), domain.PasswordLength)
			}
		})
	}
}
