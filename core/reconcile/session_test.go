package reconcile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestItems returns n items "a", "b", ... with positions 1..n.
func newTestItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: string(rune('a' + i)), Position: i + 1}
	}
	return items
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestApplyMove_MovedItemLandsAtNewIndex(t *testing.T) {
	for oldIndex := 0; oldIndex < 5; oldIndex++ {
		for newIndex := 0; newIndex < 5; newIndex++ {
			s := NewSession("/f", newTestItems(5))
			before := s.Items()

			require.NoError(t, s.ApplyMove(oldIndex, newIndex))

			after := s.Items()
			assert.Len(t, after, 5)
			assert.Equal(t, before[oldIndex].ID, after[newIndex].ID, "move %d -> %d", oldIndex, newIndex)
			assert.ElementsMatch(t, ids(before), ids(after))
		}
	}
}

func TestApplyMove_Splice(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"Forward", 0, 2, []string{"b", "c", "a", "d"}},
		{"Backward", 3, 1, []string{"a", "d", "b", "c"}},
		{"ToEnd", 0, 3, []string{"b", "c", "d", "a"}},
		{"ToStart", 3, 0, []string{"d", "a", "b", "c"}},
		{"Adjacent", 1, 2, []string{"a", "c", "b", "d"}},
		{"NoOp", 2, 2, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession("/f", newTestItems(4))
			require.NoError(t, s.ApplyMove(tt.from, tt.to))
			assert.Equal(t, tt.want, ids(s.Items()))
		})
	}
}

func TestApplyMove_InvalidIndex(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
	}{
		{"NegativeOld", -1, 0},
		{"NegativeNew", 0, -1},
		{"OldTooLarge", 4, 0},
		{"NewTooLarge", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession("/f", newTestItems(4))
			err := s.ApplyMove(tt.from, tt.to)
			assert.ErrorIs(t, err, ErrInvalidIndex)
			assert.Equal(t, []string{"a", "b", "c", "d"}, ids(s.Items()))
		})
	}

	t.Run("EmptyList", func(t *testing.T) {
		s := NewSession("/f", nil)
		assert.ErrorIs(t, s.ApplyMove(0, 0), ErrInvalidIndex)
	})
}

func TestApplyMove_RejectedWhileBusy(t *testing.T) {
	s := NewSession("/f", newTestItems(3))
	s.busy.Store(true)

	assert.ErrorIs(t, s.ApplyMove(0, 1), ErrInProgress)
	assert.ErrorIs(t, s.Reorder([]string{"c"}), ErrInProgress)
	assert.ErrorIs(t, s.Replace(newTestItems(2)), ErrInProgress)
	assert.Equal(t, []string{"a", "b", "c"}, ids(s.Items()))
}

func TestTxn_HoldsSessionAcrossMoveAndReconcile(t *testing.T) {
	adapter := newMockAdapter(nil)
	s := NewSession("/f", newTestItems(3))

	txn, err := s.Begin()
	require.NoError(t, err)
	assert.True(t, s.Busy())

	_, err = s.Begin()
	assert.ErrorIs(t, err, ErrInProgress)
	assert.ErrorIs(t, s.ApplyMove(0, 1), ErrInProgress)
	_, err = ReconcilePositions(context.Background(), s, adapter, Options{})
	assert.ErrorIs(t, err, ErrInProgress)

	require.NoError(t, txn.ApplyMove(2, 0))
	assert.ErrorIs(t, txn.ApplyMove(0, 5), ErrInvalidIndex)
	report := txn.Reconcile(context.Background(), adapter, Options{})
	assert.Len(t, report.Changes, 3)
	assert.Equal(t, map[string]int{"c": 1, "a": 2, "b": 3}, adapter.updated())

	txn.End()
	txn.End()
	assert.False(t, s.Busy())
	assert.NoError(t, s.ApplyMove(0, 1))
}

func TestPending(t *testing.T) {
	t.Run("NoMove", func(t *testing.T) {
		s := NewSession("/f", newTestItems(4))
		assert.Empty(t, s.Pending())
	})

	t.Run("AfterMove", func(t *testing.T) {
		s := NewSession("/f", newTestItems(4))
		require.NoError(t, s.ApplyMove(0, 2))

		assert.Equal(t, []Change{
			{ItemID: "b", From: 2, To: 1},
			{ItemID: "c", From: 3, To: 2},
			{ItemID: "a", From: 1, To: 3},
		}, s.Pending())

		// Pending is side-effect free
		assert.Equal(t, 1, s.Items()[2].Position)
	})

	t.Run("UnsetPositions", func(t *testing.T) {
		s := NewSession("/f", []Item{{ID: "x"}, {ID: "y"}})
		assert.Equal(t, []Change{
			{ItemID: "x", From: 0, To: 1},
			{ItemID: "y", From: 0, To: 2},
		}, s.Pending())
	})
}

func TestReorder(t *testing.T) {
	s := NewSession("/f", newTestItems(5))

	require.NoError(t, s.Reorder([]string{"e", "zz", "c", "e", "a"}))

	assert.Equal(t, []string{"e", "c", "a", "b", "d"}, ids(s.Items()))
}

func TestReplace_ResetsLastKnown(t *testing.T) {
	s := NewSession("/f", newTestItems(3))
	require.NoError(t, s.ApplyMove(0, 2))
	require.NotEmpty(t, s.Pending())

	require.NoError(t, s.Replace([]Item{{ID: "b", Position: 1}, {ID: "c", Position: 2}, {ID: "a", Position: 3}}))

	assert.Empty(t, s.Pending())
	pos, ok := s.LastKnown("a")
	assert.True(t, ok)
	assert.Equal(t, 3, pos)
}

func TestSession_ItemsIsACopy(t *testing.T) {
	s := NewSession("/f", newTestItems(2))
	items := s.Items()
	items[0].ID = "mutated"
	assert.Equal(t, "a", s.Items()[0].ID)
}

func TestPersisted(t *testing.T) {
	s := NewSession("/f", []Item{
		{ID: "a", Position: 2},
		{ID: "new", Position: 0},
		{ID: "b", Position: 1},
	})
	require.NoError(t, s.ApplyMove(2, 0))

	persisted := s.Persisted()
	assert.Equal(t, []string{"b", "a", "new"}, ids(persisted))
	assert.Equal(t, []int{1, 2, 0}, []int{persisted[0].Position, persisted[1].Position, persisted[2].Position})

	// The live order is untouched
	assert.Equal(t, []string{"b", "a", "new"}, ids(s.Items()))
	require.NoError(t, s.ApplyMove(0, 2))
	assert.Equal(t, []string{"b", "a", "new"}, ids(s.Persisted()))
}
