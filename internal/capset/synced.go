package capset

import (
	"sync"

	"github.com/holiman/uint256"
)

// Synced は Set を単一の RWMutex で直列化するラッパーです。
//
// Set 本体は単一ライタ前提で排他制御を持たないため、複数ゴルーチンから
// 触る埋め込み層（HTTP ハンドラなど）はこのラッパーを経由します。
// 変更系は書き込みロック、参照系は読み取りロックを取ります。
type Synced struct {
	mu sync.RWMutex
	s  *Set
}

// NewSynced は Set を包んだ Synced を作成します。
func NewSynced(s *Set) *Synced {
	return &Synced{s: s}
}

// Insert は Set.Insert を直列化して実行します。
func (g *Synced) Insert(id ID, value uint256.Int) Element {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.s.Insert(id, value)
}

// Update は Set.Update を直列化して実行します。
func (g *Synced) Update(id ID, value uint256.Int) (Element, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.s.Update(id, value)
}

// Remove は Set.Remove を直列化して実行します。
func (g *Synced) Remove(id ID) (Element, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.s.Remove(id)
}

// GetValue は Set.GetValue を読み取りロック下で実行します。
func (g *Synced) GetValue(id ID) (uint256.Int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.s.GetValue(id)
}

// Lowest は Set.Lowest を読み取りロック下で実行します。
func (g *Synced) Lowest() (Element, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.s.Lowest()
}

// Len は現在の要素数を返します。
func (g *Synced) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.s.Len()
}

// Capacity は構築時の容量を返します。
func (g *Synced) Capacity() int {
	return g.s.Capacity()
}
