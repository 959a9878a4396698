package history

import "testing"

func TestPushEvictsOldest(t *testing.T) {
	q := New[int](3)

	for i := 1; i <= 4; i++ {
		q.Push(i)
	}

	if q.Len() != 3 {
		t.Errorf("expected len 3 after pushing 4 items, got %d", q.Len())
	}

	oldest, ok := q.At(0)
	if !ok || oldest != 2 {
		t.Errorf("expected oldest item 2, got %d (ok=%v)", oldest, ok)
	}

	last, ok := q.Last()
	if !ok || last != 4 {
		t.Errorf("expected last item 4, got %d (ok=%v)", last, ok)
	}
}

func TestValuesOrder(t *testing.T) {
	q := New[int](4)
	for i := 0; i < 6; i++ {
		q.Push(i)
	}

	want := []int{2, 3, 4, 5}
	got := q.Values()
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d]: expected %d, got %d", i, want[i], got[i])
		}
	}

	recent := q.RecentFirst()
	for i := range want {
		if recent[i] != want[len(want)-1-i] {
			t.Errorf("RecentFirst()[%d]: expected %d, got %d", i, want[len(want)-1-i], recent[i])
		}
	}
}

func TestEmptyQueue(t *testing.T) {
	q := New[string](2)

	if _, ok := q.Last(); ok {
		t.Error("Last on empty queue should not be ok")
	}
	if _, ok := q.At(0); ok {
		t.Error("At(0) on empty queue should not be ok")
	}
	if q.Len() != 0 || q.Cap() != 2 {
		t.Errorf("expected len 0 cap 2, got len %d cap %d", q.Len(), q.Cap())
	}
}

func TestClear(t *testing.T) {
	q := New[int](2)
	q.Push(1)
	q.Push(2)
	q.Clear()

	if q.Len() != 0 {
		t.Errorf("expected len 0 after clear, got %d", q.Len())
	}

	q.Push(7)
	last, ok := q.Last()
	if !ok || last != 7 {
		t.Errorf("expected last 7 after clear+push, got %d (ok=%v)", last, ok)
	}
}

func TestMinimumCapacity(t *testing.T) {
	q := New[int](0)
	q.Push(1)
	q.Push(2)

	if q.Cap() != 1 || q.Len() != 1 {
		t.Errorf("expected cap 1 len 1, got cap %d len %d", q.Cap(), q.Len())
	}
	last, _ := q.Last()
	if last != 2 {
		t.Errorf("expected last 2, got %d", last)
	}
}
