package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Prom は Prometheus を使ったメトリクス実装です。
type Prom struct {
	insert  prometheus.Counter
	update  prometheus.Counter
	remove  prometheus.Counter
	getHit  prometheus.Counter
	getMiss prometheus.Counter
	evicted prometheus.Counter
	size    prometheus.Gauge
}

// NewProm は Prometheus を使ったメトリクス実装を初期化します。
func NewProm(namespace string) *Prom {
	makeC := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		})
	}
	makeG := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		})
	}

	p := &Prom{
		insert:  makeC("insert_total", "Number of elements inserted"),
		update:  makeC("update_total", "Number of element values updated"),
		remove:  makeC("remove_total", "Number of elements removed"),
		getHit:  makeC("get_hit_total", "Number of lookup hits"),
		getMiss: makeC("get_miss_total", "Number of lookup misses"),
		evicted: makeC("evicted_total", "Number of elements evicted at capacity"),
		size:    makeG("current_size", "Current number of elements in the set"),
	}

	// Register (重複登録は無視したいので MustRegister で panic するなら再利用側で 1 回だけ呼ぶ設計)
	prometheus.MustRegister(
		p.insert, p.update, p.remove, p.getHit, p.getMiss, p.evicted, p.size,
	)
	return p
}

// IncInsert は要素が追加されたことをカウントします。
func (p *Prom) IncInsert() { p.insert.Inc() }

// IncUpdate は既存要素の値が更新されたことをカウントします。
func (p *Prom) IncUpdate() { p.update.Inc() }

// IncRemove は要素が明示的に除去されたことをカウントします。
func (p *Prom) IncRemove() { p.remove.Inc() }

// IncGetHit は参照ヒットをカウントします。
func (p *Prom) IncGetHit() { p.getHit.Inc() }

// IncGetMiss は参照ミスをカウントします。
func (p *Prom) IncGetMiss() { p.getMiss.Inc() }

// AddEvicted は追い出された要素の数を加算します。
func (p *Prom) AddEvicted(n int) {
	if n > 0 {
		p.evicted.Add(float64(n))
	}
}

// SetSize は現在の要素数を設定します。
func (p *Prom) SetSize(n int) {
	if n >= 0 {
		p.size.Set(float64(n))
	}
}
