package search

import (
	"context"
	"time"

	"pdfcracker/internal/core/domain"
	"pdfcracker/internal/core/validate"
	"pdfcracker/internal/port"
)

const (
	DefaultProgressInterval = 20 * time.Second
	DefaultStallTimeout     = time.Minute
)

// Config carries the per-run knobs of a Coordinator.
type Config struct {
	DocumentPath string
	Workers      int

	// ProgressInterval is the monitor period between OnProgress calls.
	ProgressInterval time.Duration

	// StallTimeout bounds how long the coordinator tolerates neither a
	// worker report nor any counter movement before declaring the run
	// stuck. It keeps a dead worker from hanging the run forever.
	StallTimeout time.Duration

	// OnProgress receives the cumulative attempt count once per interval.
	// Optional; called from the monitor goroutine.
	OnProgress func(total int64)
}

// Coordinator owns the lifecycle of one search run: it validates inputs,
// splits the space, spawns the workers and the monitor, collects the first
// positive result and shuts everything down.
type Coordinator struct {
	opener port.DocumentOpener
	cfg    Config
}

func NewCoordinator(opener port.DocumentOpener, cfg Config) *Coordinator {
	if cfg.ProgressInterval <= 0 {
		cfg.ProgressInterval = DefaultProgressInterval
	}
	if cfg.StallTimeout <= 0 {
		cfg.StallTimeout = DefaultStallTimeout
	}
	return &Coordinator{opener: opener, cfg: cfg}
}

// Run performs the exhaustive search for the given fixed part. Input
// validation failures are returned as an error before any worker spawns;
// everything after that is expressed through the SearchOutcome.
func (c *Coordinator) Run(ctx context.Context, fixed domain.FixedPart) (domain.SearchOutcome, error) {
	if err := c.checkInputs(fixed); err != nil {
		return domain.SearchOutcome{}, err
	}

	start := time.Now()
	total := SpaceSize(fixed.VariableLen())
	ranges := Split(total, c.cfg.Workers)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	tracker := NewTracker()
	reports := make(chan domain.WorkerReport, len(ranges))

	for i, r := range ranges {
		w := &worker{
			id:      i,
			fixed:   fixed,
			rng:     r,
			path:    c.cfg.DocumentPath,
			opener:  c.opener,
			tracker: tracker,
			reports: reports,
		}
		go w.run(runCtx)
	}

	monitorDone := make(chan struct{})
	go func() {
		defer close(monitorDone)
		tracker.Monitor(runCtx, c.cfg.ProgressInterval, c.emitProgress)
	}()

	outcome := c.collect(ctx, cancel, tracker, reports, len(ranges))

	// An exhaustion verdict only counts if the run was not cut short.
	if err := ctx.Err(); err != nil && outcome.Kind == domain.OutcomeExhausted {
		outcome = domain.SearchOutcome{Kind: domain.OutcomeFailed, Err: err}
	}

	cancel()
	<-monitorDone

	outcome.Attempts = tracker.Total()
	outcome.Elapsed = time.Since(start)
	return outcome, nil
}

func (c *Coordinator) checkInputs(fixed domain.FixedPart) error {
	if c.cfg.Workers < 1 {
		return domain.ErrBadWorkerCount
	}
	switch fixed.Kind {
	case domain.FixedPrefix:
		if len(fixed.Digits) != domain.PrefixLength || !validate.AllDigits(fixed.Digits) {
			return domain.ErrBadPrefix
		}
	case domain.FixedSuffix:
		if !validate.DateSuffix(fixed.Digits) {
			return domain.ErrBadSuffix
		}
	default:
		return domain.ErrNoFixedPart
	}
	return nil
}

// collect drains worker reports in arrival order. The first found password
// wins and cancels the remaining workers; a worker failure turns a would-be
// exhaustion into a failed outcome. ctx here is the caller's context, not
// the per-run one, so cancelling the workers does not abort the drain.
func (c *Coordinator) collect(
	ctx context.Context,
	cancel context.CancelFunc,
	tracker *Tracker,
	reports <-chan domain.WorkerReport,
	pending int,
) domain.SearchOutcome {
	outcome := domain.SearchOutcome{Kind: domain.OutcomeExhausted}

	stall := time.NewTicker(c.cfg.StallTimeout)
	defer stall.Stop()
	lastTotal := int64(-1)

	for pending > 0 {
		select {
		case rep := <-reports:
			pending--
			switch {
			case rep.Found:
				if outcome.Kind != domain.OutcomeFound {
					outcome = domain.SearchOutcome{Kind: domain.OutcomeFound, Password: rep.Password}
					cancel()
				}
			case rep.Err != nil:
				if outcome.Kind == domain.OutcomeExhausted {
					outcome = domain.SearchOutcome{Kind: domain.OutcomeFailed, Err: rep.Err}
				}
			}

		case <-stall.C:
			// Liveness check: a healthy worker either reports or moves the
			// counter. Neither happening for a full period means a worker
			// died without reporting, so stop waiting on it.
			total := tracker.Total()
			if total == lastTotal {
				if outcome.Kind == domain.OutcomeExhausted {
					outcome = domain.SearchOutcome{Kind: domain.OutcomeFailed, Err: domain.ErrWorkerStalled}
				}
				return outcome
			}
			lastTotal = total

		case <-ctx.Done():
			if outcome.Kind == domain.OutcomeExhausted {
				outcome = domain.SearchOutcome{Kind: domain.OutcomeFailed, Err: ctx.Err()}
			}
			return outcome
		}
	}

	return outcome
}

func (c *Coordinator) emitProgress(total int64) {
	if c.cfg.OnProgress != nil {
		c.cfg.OnProgress(total)
	}
}
