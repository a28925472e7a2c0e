package capset

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"testing"

	"github.com/amakane-hakari/capset/internal/metrics"
)

type benchConfig struct {
	capacity  int
	readRatio float64
	parallel  bool
}

var benchMatrix = []benchConfig{
	{capacity: 64, readRatio: 0.90, parallel: false},
	{capacity: 1024, readRatio: 0.90, parallel: false},
	{capacity: 16384, readRatio: 0.90, parallel: false},

	{capacity: 1024, readRatio: 0.50, parallel: false},
	{capacity: 1024, readRatio: 0.10, parallel: false},

	// Synced 経由
	{capacity: 1024, readRatio: 0.90, parallel: true},
	{capacity: 1024, readRatio: 0.10, parallel: true},
}

func BenchmarkSet_MixedWorkload(b *testing.B) {
	for _, cfg := range benchMatrix {
		name := fmt.Sprintf("capacity=%d, readRatio=%.0f, parallel=%t",
			cfg.capacity, cfg.readRatio*100, cfg.parallel,
		)
		b.Run(name, func(b *testing.B) {
			runOneBenchmark(b, cfg)
		})
	}
}

func benchID(n uint64) ID {
	var id ID
	binary.BigEndian.PutUint64(id[IDLen-8:], n)
	return id
}

func runOneBenchmark(b *testing.B, cfg benchConfig) {
	b.ReportAllocs()

	// 乱数(固定シードで再現性確保)
	rnd := rand.New(rand.NewSource(42))

	s, err := New(cfg.capacity, WithMetrics(metrics.Noop{}))
	if err != nil {
		b.Fatalf("construction failed: %v", err)
	}

	// 満杯までウォームアップ
	for i := 0; i < cfg.capacity; i++ {
		s.Insert(benchID(uint64(i)), u(rnd.Uint64()%1_000_000+1))
	}

	keySpace := uint64(cfg.capacity * 2)

	if cfg.parallel {
		g := NewSynced(s)
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			r := rand.New(rand.NewSource(rnd.Int63()))
			for pb.Next() {
				id := benchID(r.Uint64() % keySpace)
				if r.Float64() < cfg.readRatio {
					_, _ = g.GetValue(id)
				} else {
					g.Insert(id, u(r.Uint64()%1_000_000+1))
				}
			}
		})
		return
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := benchID(rnd.Uint64() % keySpace)
		if rnd.Float64() < cfg.readRatio {
			_, _ = s.GetValue(id)
		} else {
			s.Insert(id, u(rnd.Uint64()%1_000_000+1))
		}
	}
}
