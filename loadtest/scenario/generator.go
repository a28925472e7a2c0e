package scenario

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// Generator は 負荷試験のターゲットを生成する構造体です。
type Generator struct {
	BaseURL     string
	Keys        int
	ReadRatio   float64
	LowestRatio float64
	RemoveRatio float64
	ReadOnly    bool

	rnd *rand.Rand
	mu  sync.Mutex
}

// NewGenerator は 指定されたパラメータに基づいて新しい Generator を作成します。
func NewGenerator(base string, keys int, readRatio, lowestRatio, removeRatio float64, readOnly bool) *Generator {
	src := rand.NewSource(time.Now().UnixNano())
	return &Generator{
		BaseURL:     base,
		Keys:        keys,
		ReadRatio:   clamp(readRatio, 0, 1),
		LowestRatio: clamp(lowestRatio, 0, 1),
		RemoveRatio: clamp(removeRatio, 0, 1),
		ReadOnly:    readOnly,
		rnd:         rand.New(src),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Targeter は vegeta.Targeter インターフェースを実装し、負荷試験のターゲットを生成します。
func (g *Generator) Targeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		g.mu.Lock()
		defer g.mu.Unlock()

		k := g.rnd.Intn(g.Keys)
		// 20バイト識別子を16進40桁で表現
		id := fmt.Sprintf("%040x", k)

		isRead := g.ReadOnly
		if !g.ReadOnly {
			if g.rnd.Float64() < g.ReadRatio {
				isRead = true
			}
		}

		if isRead {
			t.Method = "GET"
			if g.rnd.Float64() < g.LowestRatio {
				t.URL = fmt.Sprintf("%s/lowest", g.BaseURL)
			} else {
				t.URL = fmt.Sprintf("%s/elements/%s", g.BaseURL, id)
			}
			t.Body = nil
			t.Header = nil
			return nil
		}

		if g.rnd.Float64() < g.RemoveRatio {
			t.Method = "DELETE"
			t.URL = fmt.Sprintf("%s/elements/%s", g.BaseURL, id)
			t.Body = nil
			t.Header = nil
			return nil
		}

		b, err := json.Marshal(map[string]any{
			// 挿入値は非ゼロの乱数値（最小要素の入れ替わりを誘発する）
			"value": fmt.Sprintf("%d", g.rnd.Int63n(1_000_000)+1),
		})
		if err != nil {
			return err
		}
		t.Method = "POST"
		t.URL = fmt.Sprintf("%s/elements/%s", g.BaseURL, id)
		t.Body = b
		if t.Header == nil {
			t.Header = make(map[string][]string, 1)
		}
		t.Header["Content-Type"] = []string{"application/json"}
		return nil
	}
}
