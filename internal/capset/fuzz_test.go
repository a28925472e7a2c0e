package capset

import (
	"bytes"
	"errors"
	"testing"

	"github.com/holiman/uint256"
)

/*
Fuzzで検証する性質（簡易）
1. パニックしない
2. どの操作の後も Len() <= capacity
3. 参照モデル（仕様どおりの素朴なスライス実装）と常に一致する:
   - Len が一致
   - Lowest の (識別子, 値) が一致（空なら両者とも空）
   - 直前に操作した識別子の GetValue 結果が一致
値域を狭くして最小値の同値衝突を意図的に起こし、先頭側スロット優先の
追い出し決定性も比較で検証する。重複識別子も仕様どおり未検査のまま
両実装に流し、挙動が揃うことだけを確認する。
*/

type modelElem struct {
	id  ID
	val uint64
}

type model struct {
	capacity int
	elems    []modelElem
}

func (m *model) indexOf(id ID) int {
	for i := range m.elems {
		if m.elems[i].id == id {
			return i
		}
	}
	return -1
}

func (m *model) lowestIndex() int {
	low := 0
	for i := 1; i < len(m.elems); i++ {
		if m.elems[i].val < m.elems[low].val {
			low = i
		}
	}
	return low
}

func (m *model) swapRemove(i int) {
	last := len(m.elems) - 1
	if i != last {
		m.elems[i] = m.elems[last]
	}
	m.elems = m.elems[:last]
}

func (m *model) insert(id ID, val uint64) {
	if len(m.elems) == m.capacity && len(m.elems) > 0 {
		m.swapRemove(m.lowestIndex())
	}
	m.elems = append(m.elems, modelElem{id: id, val: val})
}

func FuzzSetOperations(f *testing.F) {
	seedCorpus := [][]byte{
		{4, 0, 1, 1, 0, 2, 2, 0, 3, 3},       // capacity=5, inserts
		{1, 0, 1, 1, 3, 1, 0, 4, 1, 0},       // capacity=2, insert/remove/lowest
		{2, 0, 5, 3, 0, 5, 3, 1, 5, 1, 1, 2}, // 同値の衝突
	}
	for _, c := range seedCorpus {
		f.Add(c)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) < 4 {
			t.Skip()
		}

		capacity := int(data[0]%8) + 1
		s, err := New(capacity)
		if err != nil {
			t.Fatalf("construction failed: %v", err)
		}
		m := &model{capacity: capacity}

		const (
			opInsert = 0
			opUpdate = 1
			opGet    = 2
			opRemove = 3
			opLowest = 4
		)

		reader := bytes.NewReader(data[1:])
		chunk := make([]byte, 3)

		for {
			if _, err := reader.Read(chunk); err != nil {
				break
			}
			op := chunk[0] % 5
			id := mkID(chunk[1] % 16) // 狭いキー空間で重複を誘発
			val := uint64(chunk[2] % 8)

			switch op {
			case opInsert:
				s.Insert(id, u(val))
				m.insert(id, val)

			case opUpdate:
				_, err := s.Update(id, u(val))
				if i := m.indexOf(id); i < 0 {
					if !errors.Is(err, ErrNotFound) {
						t.Fatalf("update absent %s: want ErrNotFound got %v", id, err)
					}
				} else {
					if err != nil {
						t.Fatalf("update present %s: %v", id, err)
					}
					m.elems[i].val = val
				}

			case opGet:
				got, err := s.GetValue(id)
				if i := m.indexOf(id); i < 0 {
					if !errors.Is(err, ErrNotFound) {
						t.Fatalf("get absent %s: want ErrNotFound got %v", id, err)
					}
				} else {
					if err != nil {
						t.Fatalf("get present %s: %v", id, err)
					}
					if !got.Eq(uint256.NewInt(m.elems[i].val)) {
						t.Fatalf("get %s: got %s want %d", id, got.Dec(), m.elems[i].val)
					}
				}

			case opRemove:
				_, err := s.Remove(id)
				if i := m.indexOf(id); i < 0 {
					if !errors.Is(err, ErrNotFound) {
						t.Fatalf("remove absent %s: want ErrNotFound got %v", id, err)
					}
				} else {
					m.swapRemove(i)
					if len(m.elems) == 0 {
						if !errors.Is(err, ErrEmptySet) {
							t.Fatalf("remove to empty: want ErrEmptySet got %v", err)
						}
					} else if err != nil {
						t.Fatalf("remove present %s: %v", id, err)
					}
				}

			case opLowest:
				low, err := s.Lowest()
				if len(m.elems) == 0 {
					if !errors.Is(err, ErrEmptySet) {
						t.Fatalf("lowest on empty: want ErrEmptySet got %v", err)
					}
				} else {
					if err != nil {
						t.Fatalf("lowest: %v", err)
					}
					want := m.elems[m.lowestIndex()]
					if low.ID != want.id || !low.Value.Eq(uint256.NewInt(want.val)) {
						t.Fatalf("lowest mismatch: got (%s,%s) want (%s,%d)",
							low.ID, low.Value.Dec(), want.id, want.val)
					}
				}
			}

			if s.Len() > capacity {
				t.Fatalf("capacity invariant violated: len=%d cap=%d", s.Len(), capacity)
			}
			if s.Len() != len(m.elems) {
				t.Fatalf("length mismatch: set=%d model=%d", s.Len(), len(m.elems))
			}
		}
	})
}
