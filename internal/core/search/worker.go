package search

import (
	"context"
	"fmt"

	"pdfcracker/internal/core/domain"
	"pdfcracker/internal/port"
)

type worker struct {
	id      int
	fixed   domain.FixedPart
	rng     domain.SearchRange
	path    string
	opener  port.DocumentOpener
	tracker *Tracker
	reports chan<- domain.WorkerReport
}

// run tries every candidate index in the worker's range in ascending order.
// Exactly one report is always delivered, even on panic; the reports channel
// is buffered to the worker count, so the send can never block.
func (w *worker) run(ctx context.Context) {
	report := domain.WorkerReport{WorkerID: w.id}
	defer func() {
		if r := recover(); r != nil {
			report = domain.WorkerReport{
				WorkerID: w.id,
				Err:      fmt.Errorf("%w: worker %d: %v", domain.ErrWorkerCrashed, w.id, r),
			}
		}
		w.reports <- report
	}()

	prober, err := w.opener.Open(w.path)
	if err != nil {
		report.Err = fmt.Errorf("%w: %v", domain.ErrDocumentAccess, err)
		return
	}
	defer prober.Close()

	for idx := w.rng.Start; idx < w.rng.End; idx++ {
		// Cooperative cancellation, checked at each loop boundary.
		select {
		case <-ctx.Done():
			return
		default:
		}

		password := Candidate(w.fixed, idx)
		w.tracker.Record()

		outcome, _ := prober.TryPassword(password)
		if outcome == domain.ProbeMatch {
			report.Found = true
			report.Password = password
			return
		}
		// NoMatch and ProbeFailed both continue with the next candidate; a
		// single bad probe never aborts the range.
	}
}
