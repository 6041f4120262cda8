package domain

type FixedPartKind string
type OutcomeKind string
type ProbeOutcome string

const (
	// Fixed part kinds
	FixedPrefix FixedPartKind = "PREFIX"
	FixedSuffix FixedPartKind = "SUFFIX"

	// Search outcomes
	OutcomeFound     OutcomeKind = "FOUND"
	OutcomeExhausted OutcomeKind = "EXHAUSTED"
	OutcomeFailed    OutcomeKind = "FAILED"

	// Probe outcomes. A failed probe is not a match and not a fatal error;
	// the worker moves on to the next candidate either way.
	ProbeMatch   ProbeOutcome = "MATCH"
	ProbeNoMatch ProbeOutcome = "NO_MATCH"
	ProbeFailed  ProbeOutcome = "PROBE_FAILED"
)

type SearchError string

const (
	ErrBothFixedParts SearchError = "SPECIFY_EITHER_PREFIX_OR_SUFFIX_NOT_BOTH"
	ErrNoFixedPart    SearchError = "PREFIX_OR_SUFFIX_REQUIRED"
	ErrBadPrefix      SearchError = "PREFIX_MUST_BE_EXACTLY_5_DIGITS"
	ErrBadSuffix      SearchError = "SUFFIX_MUST_BE_A_VALID_DDMMYY_DATE"
	ErrBadWorkerCount SearchError = "WORKER_COUNT_MUST_BE_AT_LEAST_1"
	ErrDocumentAccess SearchError = "DOCUMENT_ACCESS"
	ErrWorkerCrashed  SearchError = "WORKER_CRASHED"
	ErrWorkerStalled  SearchError = "WORKER_STALLED"
)

func (e SearchError) Error() string {
	return string(e)
}
