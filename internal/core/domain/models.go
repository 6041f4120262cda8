package domain

import "time"

const (
	// PasswordLength is the exact length of every candidate password.
	PasswordLength = 11

	PrefixLength = 5
	SuffixLength = 6
)

// FixedPart is the known segment of the password, either the leading 5
// digits or the trailing 6-digit date.
type FixedPart struct {
	Kind   FixedPartKind
	Digits string
}

// VariableLen returns the number of unknown digits left to enumerate.
func (f FixedPart) VariableLen() int {
	return PasswordLength - len(f.Digits)
}

// Compose builds the full candidate password from the rendered variable part.
func (f FixedPart) Compose(variable string) string {
	if f.Kind == FixedPrefix {
		return f.Digits + variable
	}
	return variable + f.Digits
}

// SearchRange is a half-open interval [Start, End) of candidate indices,
// owned by exactly one worker for its whole lifetime.
type SearchRange struct {
	Start uint64
	End   uint64
}

func (r SearchRange) Empty() bool {
	return r.Start >= r.End
}

func (r SearchRange) Size() uint64 {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start
}

// WorkerReport is the single terminal signal every worker emits: a found
// password, a clean range exhaustion, or a failure.
type WorkerReport struct {
	WorkerID int
	Found    bool
	Password string
	Err      error
}

// SearchOutcome is the terminal value of a run, produced exactly once.
type SearchOutcome struct {
	Kind     OutcomeKind
	Password string
	Err      error
	Attempts int64
	Elapsed  time.Duration
}
