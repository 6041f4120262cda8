package port

import "pdfcracker/internal/core/domain"

// DocumentOpener opens an independent read-only handle to the target
// document. Every worker opens its own handle so decode state is never
// shared between goroutines.
type DocumentOpener interface {
	Open(path string) (DocumentProber, error)
}

// DocumentProber runs decryption trials against one open handle. It must
// tolerate arbitrary digit strings without crashing the process.
type DocumentProber interface {
	TryPassword(candidate string) (domain.ProbeOutcome, error)
	Close() error
}
