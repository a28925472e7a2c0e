package metrics

import (
	"sync/atomic"
)

// Interface はメトリクス更新用抽象
type Interface interface {
	IncInsert()
	IncUpdate()
	IncRemove()
	IncGetHit()
	IncGetMiss()
	AddEvicted(n int)
	SetSize(n int)
}

// Noop は何もしないメトリクス実装
type Noop struct{}

// IncInsert は何もしないメトリクス実装
func (Noop) IncInsert() {}

// IncUpdate は何もしないメトリクス実装
func (Noop) IncUpdate() {}

// IncRemove は何もしないメトリクス実装
func (Noop) IncRemove() {}

// IncGetHit は何もしないメトリクス実装
func (Noop) IncGetHit() {}

// IncGetMiss は何もしないメトリクス実装
func (Noop) IncGetMiss() {}

// AddEvicted は何もしないメトリクス実装
func (Noop) AddEvicted(_ int) {}

// SetSize は何もしないメトリクス実装
func (Noop) SetSize(_ int) {}

// Simple はシンプルなメトリクス実装です。
type Simple struct {
	Insert  atomic.Uint64
	Update  atomic.Uint64
	Remove  atomic.Uint64
	GetHit  atomic.Uint64
	GetMiss atomic.Uint64
	Evicted atomic.Uint64
	Size    atomic.Uint64
}

// NewSimple は新しい Simple メトリクスを作成します。
func NewSimple() *Simple { return &Simple{} }

// IncInsert は要素が追加されたことをカウントします。
func (m *Simple) IncInsert() { m.Insert.Add(1) }

// IncUpdate は既存要素の値が更新されたことをカウントします。
func (m *Simple) IncUpdate() { m.Update.Add(1) }

// IncRemove は要素が明示的に除去されたことをカウントします。
func (m *Simple) IncRemove() { m.Remove.Add(1) }

// IncGetHit は参照ヒットをカウントします。
func (m *Simple) IncGetHit() { m.GetHit.Add(1) }

// IncGetMiss は参照ミスをカウントします。
func (m *Simple) IncGetMiss() { m.GetMiss.Add(1) }

// AddEvicted は追い出された要素の数を加算します。
func (m *Simple) AddEvicted(n int) {
	if n > 0 {
		m.Evicted.Add(uint64(n))
	}
}

// SetSize は現在の要素数を設定します。
func (m *Simple) SetSize(n int) {
	if n >= 0 {
		m.Size.Store(uint64(n))
	}
}
