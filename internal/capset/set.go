package capset

import (
	"github.com/holiman/uint256"

	"github.com/amakane-hakari/capset/internal/metrics"
)

// Element は (識別子, 値) の組を表します。
type Element struct {
	ID    ID
	Value uint256.Int
}

type logLike interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config はセットの設定を表します。
type Config struct {
	Logger  logLike
	Metrics metrics.Interface
}

// Option はセットのオプションを設定する関数です。
type Option func(*Config)

// WithLogger はセットのロガーを設定するオプションです。
func WithLogger(l logLike) Option {
	return func(c *Config) { c.Logger = l }
}

// WithMetrics はセットのメトリクスを設定するオプションです。
func WithMetrics(m metrics.Interface) Option {
	return func(c *Config) { c.Metrics = m }
}

// Set は容量固定の最小値追い出しセットを表します。
//
// 要素はスロット列（スライス）に保持され、並び順に意味はありませんが、
// 最小値が並ぶ場合の追い出し対象は常に先頭側スロット（最初に見つかる要素）
// に決定されます。Set 自体は排他制御を持ちません。複数ゴルーチンから
// 使う場合は Synced で包んでください。
type Set struct {
	cfg      Config
	capacity int
	elems    []Element
}

// New は容量 capacity の新しい Set を作成します。
// capacity が 1 未満の場合は ErrInvalidCapacity を返します。
func New(capacity int, opts ...Option) (*Set, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	cfg := Config{Metrics: metrics.Noop{}}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.Noop{}
	}
	return &Set{
		cfg:      cfg,
		capacity: capacity,
		elems:    make([]Element, 0, capacity),
	}, nil
}

// Len はセット内の要素数を返します。
func (s *Set) Len() int { return len(s.elems) }

// Capacity は構築時に固定された容量を返します。
func (s *Set) Capacity() int { return s.capacity }

// indexOf は identifier が最初に現れるスロットを返します。見つからなければ -1。
func (s *Set) indexOf(id ID) int {
	for i := range s.elems {
		if s.elems[i].ID == id {
			return i
		}
	}
	return -1
}

// lowestIndex は値が最小の要素のスロットを返します。
// 同値が並ぶ場合は先頭側が勝つよう厳密な < で比較します。呼び出し側が
// 空でないことを保証します。
func (s *Set) lowestIndex() int {
	low := 0
	for i := 1; i < len(s.elems); i++ {
		if s.elems[i].Value.Lt(&s.elems[low].Value) {
			low = i
		}
	}
	return low
}

// swapRemove はスロット i を末尾要素で上書きして 1 つ縮めます。
// 残る要素の相対順序は保存されません。
func (s *Set) swapRemove(i int) {
	last := len(s.elems) - 1
	if i != last {
		s.elems[i] = s.elems[last]
	}
	s.elems[last] = Element{}
	s.elems = s.elems[:last]
}
