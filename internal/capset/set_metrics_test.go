package capset

import (
	"testing"

	"github.com/amakane-hakari/capset/internal/metrics"
)

func TestSet_MetricsBasic(t *testing.T) {
	simple := metrics.NewSimple()
	s, _ := New(2, WithMetrics(simple))

	s.Insert(mkID(1), u(10))
	s.Insert(mkID(2), u(20))
	s.Insert(mkID(3), u(30)) // 満杯: 要素1を追い出す
	_, _ = s.Update(mkID(2), u(25))
	_, _ = s.GetValue(mkID(2))
	_, _ = s.GetValue(mkID(99))
	_, _ = s.Remove(mkID(3))

	if got := simple.Insert.Load(); got != 3 {
		t.Fatalf("Insert want 3 got %d", got)
	}
	if got := simple.Evicted.Load(); got != 1 {
		t.Fatalf("Evicted want 1 got %d", got)
	}
	if got := simple.Update.Load(); got != 1 {
		t.Fatalf("Update want 1 got %d", got)
	}
	if got := simple.GetHit.Load(); got != 1 {
		t.Fatalf("GetHit want 1 got %d", got)
	}
	if got := simple.GetMiss.Load(); got != 1 {
		t.Fatalf("GetMiss want 1 got %d", got)
	}
	if got := simple.Remove.Load(); got != 1 {
		t.Fatalf("Remove want 1 got %d", got)
	}
	if got := simple.Size.Load(); got != 1 {
		t.Fatalf("Size want 1 got %d", got)
	}
}
