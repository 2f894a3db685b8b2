package reconcile

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ReconcilePositions pushes the session's position deltas to the host.
// It claims the session for the duration of the call; see Txn.Reconcile.
//
// The returned error is non-nil only when the session is already claimed.
// Per-item failures are reported in Report.Failures.
func ReconcilePositions(ctx context.Context, s *Session, adapter Adapter, opts Options) (*Report, error) {
	t, err := s.Begin()
	if err != nil {
		return nil, err
	}
	defer t.End()
	return t.Reconcile(ctx, adapter, opts), nil
}

// Reconcile pushes the position deltas under an existing claim.
//
// Every item gets the target position index+1 in memory. Items whose target
// differs from their last-known persisted position are written through the
// adapter concurrently; all writes are awaited and none short-circuits the others.
// Succeeded items have their last-known position advanced, failed ones keep the
// stale value so the next call re-sends only them.
func (t *Txn) Reconcile(ctx context.Context, adapter Adapter, opts Options) *Report {
	s := t.s
	report := &Report{Folder: s.folder, Changes: []Change{}, Failures: []UpdateFailure{}}

	s.mu.Lock()
	changes := s.changes()
	for i := range s.items {
		s.items[i].Position = i + 1
	}
	s.mu.Unlock()

	if len(changes) == 0 {
		return report
	}
	report.Changes = changes

	errs := make([]error, len(changes))

	var g errgroup.Group
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i, c := range changes {
		g.Go(func() error {
			errs[i] = adapter.UpdatePosition(ctx, c.ItemID, c.To)
			return nil
		})
	}
	_ = g.Wait()

	s.mu.Lock()
	for i, c := range changes {
		if errs[i] != nil {
			report.Failures = append(report.Failures, UpdateFailure{ItemID: c.ItemID, Err: errs[i]})
			continue
		}
		s.lastKnown[c.ItemID] = c.To
	}
	s.mu.Unlock()

	return report
}
