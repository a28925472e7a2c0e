package capset

import (
	"errors"
	"sync"
	"testing"
)

func TestSynced_Concurrency(t *testing.T) {
	const n = 200

	// 容量 = ゴルーチン数なので他者の要素が追い出されることはない
	s, err := New(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := NewSynced(s)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var id ID
			id[0] = byte(i >> 8)
			id[1] = byte(i)
			g.Insert(id, u(uint64(i)+1))
			if _, err := g.GetValue(id); err != nil {
				t.Errorf("missing element %s: %v", id, err)
			}
			if _, err := g.Remove(id); err != nil && !errors.Is(err, ErrEmptySet) {
				t.Errorf("remove %s: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	if l := g.Len(); l != 0 {
		t.Fatalf("expected len=0 got %d", l)
	}
}
