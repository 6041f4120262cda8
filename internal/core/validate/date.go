package validate

import (
	"time"

	"pdfcracker/internal/core/domain"
)

// DDMMYY, e.g. "311299" for 31 December 1999.
const dateLayout = "020106"

// DateSuffix reports whether s is a valid 6-digit date in DDMMYY form.
// Parsing is strict: day 00, month 13, Feb 30 and friends are all rejected.
// Two-digit years follow the POSIX pivot (00-68 -> 20xx, 69-99 -> 19xx),
// which matters for leap-day suffixes like "290200".
func DateSuffix(s string) bool {
	if len(s) != domain.SuffixLength || !AllDigits(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// AllDigits reports whether s is non-empty and consists only of '0'-'9'.
func AllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FixedPart checks the prefix/suffix argument pair and returns the fixed
// part for the run. Exactly one of the two must be set.
func FixedPart(prefix, suffix string) (domain.FixedPart, error) {
	switch {
	case prefix != "" && suffix != "":
		return domain.FixedPart{}, domain.ErrBothFixedParts
	case prefix == "" && suffix == "":
		return domain.FixedPart{}, domain.ErrNoFixedPart
	case prefix != "":
		if len(prefix) != domain.PrefixLength || !AllDigits(prefix) {
			return domain.FixedPart{}, domain.ErrBadPrefix
		}
		return domain.FixedPart{Kind: domain.FixedPrefix, Digits: prefix}, nil
	default:
		if !DateSuffix(suffix) {
			return domain.FixedPart{}, domain.ErrBadSuffix
		}
		return domain.FixedPart{Kind: domain.FixedSuffix, Digits: suffix}, nil
	}
}
