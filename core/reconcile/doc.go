// Package reconcile keeps the on-screen order of a folder's assets and the
// host's persisted sort order in step.
//
// # Model
//
// A Session owns the ordered item list of one folder. The slice order is the
// semantic order: after a successful reconciliation the persisted position of
// the item at index i is i+1. Alongside the list the session tracks the
// last-known persisted position of every item, so only real deltas are sent.
//
// # Flow
//
//  1. Registry.Open fetches the folder through the Adapter (once, even under
//     concurrent callers) and creates the Session.
//  2. Session.ApplyMove splices one item to a new index. Pure in-memory.
//  3. ReconcilePositions computes the changed set, fans out one
//     Adapter.UpdatePosition call per changed item and waits for all of them.
//     Failures are collected per item and never abort the batch.
//
// # Concurrency
//
// Session.Begin claims a session and returns a Txn. While a claim is held,
// ApplyMove, Reorder, Replace, Refresh and ReconcilePositions fail with
// ErrInProgress. The one-shot methods claim for their own duration; a caller
// that must move and persist atomically holds one Txn across both steps. Update
// calls inside one reconciliation race; callers must not rely on the order
// in which the host applies them.
//
// # Failure policy
//
// The in-memory order is never rolled back. A failed item keeps its new
// position in memory but its last-known position stays stale, so calling
// ReconcilePositions again re-sends exactly the failed items.
//
// # Usage Example
//
//	reg := reconcile.NewRegistry(adapter)
//	s, err := reg.Open(ctx, "/Demo/Campaign")
//	if err := s.ApplyMove(0, 2); err != nil {
//	    return err
//	}
//	report, err := reconcile.ReconcilePositions(ctx, s, reg.Adapter(), reconcile.Options{Concurrency: 8})
//	for _, f := range report.Failures {
//	    log.Printf("%s: %v", f.ItemID, f.Err)
//	}
package reconcile
