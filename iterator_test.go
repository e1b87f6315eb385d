package ranklist

import (
	"testing"
)

func TestIteratorNextTraversesElementsInOrder(t *testing.T) {
	l := New[int](intLess, WithRandSeed(1))

	for _, key := range []int{5, 1, 3} {
		l.Insert(key)
	}

	it := l.Iterator()

	var keys []int
	for it.Next() {
		keys = append(keys, it.Key())
		if want := len(keys); it.Rank() != want {
			t.Fatalf("expected rank %d, got %d", want, it.Rank())
		}
	}

	expectedKeys := []int{1, 3, 5}
	if len(keys) != len(expectedKeys) {
		t.Fatalf("expected %d keys from iterator, got %d", len(expectedKeys), len(keys))
	}
	for i, want := range expectedKeys {
		if keys[i] != want {
			t.Fatalf("expected key %d at position %d, got %d", want, i, keys[i])
		}
	}

	if it.Valid() {
		t.Fatalf("expected iterator to be invalid after exhaustion")
	}
	if it.Rank() != 0 {
		t.Fatalf("expected rank 0 after exhaustion, got %d", it.Rank())
	}
}

func TestIteratorSeekGEPositionsCorrectly(t *testing.T) {
	l := New[int](intLess, WithRandSeed(2))

	l.Insert(1)
	l.Insert(3)
	l.Insert(5)

	it := l.Iterator()

	if !it.SeekGE(2) {
		t.Fatalf("expected SeekGE to locate key >= 2")
	}
	if got := it.Key(); got != 3 {
		t.Fatalf("expected key 3 after SeekGE, got %d", got)
	}
	if got := it.Rank(); got != 2 {
		t.Fatalf("expected rank 2 after SeekGE, got %d", got)
	}

	if !it.Next() {
		t.Fatalf("expected iterator to advance to next element")
	}
	if got := it.Key(); got != 5 {
		t.Fatalf("expected key 5 after Next, got %d", got)
	}

	if it.Next() {
		t.Fatalf("expected iterator to be exhausted")
	}

	if it.SeekGE(6) {
		t.Fatalf("expected SeekGE past the maximum to fail")
	}
	if it.Valid() {
		t.Fatalf("expected iterator to be invalid after failed SeekGE")
	}
}

func TestIteratorSeekByRank(t *testing.T) {
	l := New[int](intLess, WithRandSeed(3))
	for i := 1; i <= 10; i++ {
		l.Insert(i * 10)
	}

	it := l.Iterator()
	if !it.Seek(7) {
		t.Fatalf("expected Seek(7) to succeed")
	}
	if got := it.Key(); got != 70 {
		t.Fatalf("expected key 70 at rank 7, got %d", got)
	}

	var rest []int
	for it.Next() {
		rest = append(rest, it.Key())
	}
	if len(rest) != 3 || rest[0] != 80 || rest[2] != 100 {
		t.Fatalf("expected [80 90 100] after rank 7, got %v", rest)
	}

	if it.Seek(0) || it.Seek(11) {
		t.Fatalf("expected out-of-range Seek to fail")
	}
}

func TestIteratorOnEmptyList(t *testing.T) {
	l := New[int](intLess)
	it := l.Iterator()

	if it.Next() {
		t.Fatalf("expected Next on empty list to fail")
	}
	if it.SeekGE(0) {
		t.Fatalf("expected SeekGE on empty list to fail")
	}
	if it.Seek(1) {
		t.Fatalf("expected Seek on empty list to fail")
	}
}
