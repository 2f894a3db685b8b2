package reconcile

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// Session owns the ordered item list of one folder together with the
// last-known persisted position of every item.
//
// Moves, refreshes and reconciliations are serialized by the busy guard:
// while a Txn is open every other mutating call fails with ErrInProgress.
type Session struct {
	folder string

	mu        sync.Mutex
	items     []Item
	lastKnown map[string]int

	busy atomic.Bool
}

// NewSession creates a session from freshly fetched items.
// The fetched positions become the last-known persisted positions.
func NewSession(folder string, items []Item) *Session {
	s := &Session{folder: folder}
	s.load(items)
	return s
}

func (s *Session) load(items []Item) {
	s.items = make([]Item, len(items))
	copy(s.items, items)
	s.lastKnown = make(map[string]int, len(items))
	for _, it := range items {
		s.lastKnown[it.ID] = it.Position
	}
}

// Folder returns the folder this session belongs to.
func (s *Session) Folder() string {
	return s.folder
}

// Len returns the number of items in the list.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Items returns a copy of the current ordered list.
func (s *Session) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// LastKnown returns the last persisted position recorded for an item.
func (s *Session) LastKnown(itemID string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, ok := s.lastKnown[itemID]
	return pos, ok
}

// Busy reports whether the session is claimed by a move, restore or
// reconciliation.
func (s *Session) Busy() bool {
	return s.busy.Load()
}

// Txn is an exclusive claim on a session. While a Txn is open every other
// claim, and with it every mutating call and reconciliation, fails with
// ErrInProgress. A Txn is used by one goroutine and must be ended.
type Txn struct {
	s     *Session
	ended bool
}

// Begin claims the session.
func (s *Session) Begin() (*Txn, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrInProgress
	}
	return &Txn{s: s}, nil
}

// End releases the claim. Calling it again is a no-op.
func (t *Txn) End() {
	if t == nil || t.ended {
		return
	}
	t.ended = true
	t.s.busy.Store(false)
}

// Session returns the claimed session.
func (t *Txn) Session() *Session {
	return t.s
}

// ApplyMove removes the item at oldIndex and reinserts it at newIndex.
// Both indices refer to the list before removal; after the call the moved
// item sits at newIndex. No I/O happens here.
func (s *Session) ApplyMove(oldIndex, newIndex int) error {
	t, err := s.Begin()
	if err != nil {
		return err
	}
	defer t.End()
	return t.ApplyMove(oldIndex, newIndex)
}

// ApplyMove is Session.ApplyMove under an existing claim.
func (t *Txn) ApplyMove(oldIndex, newIndex int) error {
	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.items)
	if oldIndex < 0 || oldIndex >= n || newIndex < 0 || newIndex >= n {
		return fmt.Errorf("%w: move %d -> %d on list of %d", ErrInvalidIndex, oldIndex, newIndex, n)
	}
	if oldIndex == newIndex {
		return nil
	}

	moved := s.items[oldIndex]
	if oldIndex < newIndex {
		copy(s.items[oldIndex:newIndex], s.items[oldIndex+1:newIndex+1])
	} else {
		copy(s.items[newIndex+1:oldIndex+1], s.items[newIndex:oldIndex])
	}
	s.items[newIndex] = moved

	return nil
}

// Reorder rearranges the list to follow ids. Unknown ids are skipped and
// items absent from ids keep their relative order after the listed ones.
func (s *Session) Reorder(ids []string) error {
	t, err := s.Begin()
	if err != nil {
		return err
	}
	defer t.End()
	return t.Reorder(ids)
}

// Reorder is Session.Reorder under an existing claim.
func (t *Txn) Reorder(ids []string) error {
	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]Item, len(s.items))
	for _, it := range s.items {
		byID[it.ID] = it
	}

	out := make([]Item, 0, len(s.items))
	placed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		it, ok := byID[id]
		if !ok {
			continue
		}
		if _, dup := placed[id]; dup {
			continue
		}
		placed[id] = struct{}{}
		out = append(out, it)
	}
	for _, it := range s.items {
		if _, ok := placed[it.ID]; !ok {
			out = append(out, it)
		}
	}

	s.items = out
	return nil
}

// Replace swaps in a freshly fetched list, resetting last-known positions.
func (s *Session) Replace(items []Item) error {
	t, err := s.Begin()
	if err != nil {
		return err
	}
	defer t.End()
	t.Replace(items)
	return nil
}

// Replace is Session.Replace under an existing claim.
func (t *Txn) Replace(items []Item) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.s.load(items)
}

// Pending returns the changed set the next reconciliation would push.
func (s *Session) Pending() []Change {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changes()
}

// changes must be called with mu held.
func (s *Session) changes() []Change {
	var out []Change
	for i, it := range s.items {
		target := i + 1
		if from := s.lastKnown[it.ID]; from != target {
			out = append(out, Change{ItemID: it.ID, From: from, To: target})
		}
	}
	return out
}

// Persisted returns the items in their last-known persisted order, with
// Position holding the persisted value. Items never persisted sort last.
func (s *Session) Persisted() []Item {
	s.mu.Lock()
	out := make([]Item, len(s.items))
	for i, it := range s.items {
		it.Position = s.lastKnown[it.ID]
		out[i] = it
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Position, out[j].Position
		if a == 0 || b == 0 {
			return a != 0 && b == 0
		}
		return a < b
	})
	return out
}
