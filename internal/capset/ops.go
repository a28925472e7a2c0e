package capset

import "github.com/holiman/uint256"

// Insert は要素をセットに追加し、追加後の最小要素を返します。
//
// セットが空だった場合は要素を追加したうえで番兵（ゼロ値の Element）を
// 返します。満杯だった場合は値が最小の要素（同値なら先頭側スロット）を
// 追い出してから追加します。失敗することはありません。
//
// 識別子の一意性は呼び出し側の責務です。既存と同じ識別子を渡すと同一
// 識別子の要素が 2 つ並び、片方が除去されるまで後方の要素は識別子検索
// から到達できなくなります。
func (s *Set) Insert(id ID, value uint256.Int) Element {
	if len(s.elems) == 0 {
		s.elems = append(s.elems, Element{ID: id, Value: value})
		s.cfg.Metrics.IncInsert()
		s.cfg.Metrics.SetSize(len(s.elems))
		if s.cfg.Logger != nil {
			s.cfg.Logger.Debug("set.insert", "id", id.String(), "value", value.Dec())
		}
		return Element{}
	}

	if len(s.elems) == s.capacity {
		victim := s.lowestIndex()
		evicted := s.elems[victim]
		s.swapRemove(victim)
		s.cfg.Metrics.AddEvicted(1)
		if s.cfg.Logger != nil {
			s.cfg.Logger.Info("set.evict", "id", evicted.ID.String(), "value", evicted.Value.Dec())
		}
	}

	s.elems = append(s.elems, Element{ID: id, Value: value})
	s.cfg.Metrics.IncInsert()
	s.cfg.Metrics.SetSize(len(s.elems))
	if s.cfg.Logger != nil {
		s.cfg.Logger.Debug("set.insert", "id", id.String(), "value", value.Dec())
	}
	return s.elems[s.lowestIndex()]
}

// Update は既存要素の値をスロット位置を変えずに置き換え、更新後の
// 最小要素を返します。識別子が存在しない場合はセットを変更せず
// ErrNotFound を返します。
func (s *Set) Update(id ID, value uint256.Int) (Element, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Element{}, ErrNotFound
	}
	s.elems[i].Value = value
	s.cfg.Metrics.IncUpdate()
	if s.cfg.Logger != nil {
		s.cfg.Logger.Debug("set.update", "id", id.String(), "value", value.Dec())
	}
	return s.elems[s.lowestIndex()], nil
}

// Remove は要素をスワップ除去（末尾要素でスロットを上書きして 1 つ縮める）
// し、残りの最小要素を返します。識別子が存在しない場合はセットを変更せず
// ErrNotFound を返します。
//
// 除去によってセットが空になった場合、除去自体は適用済みのまま
// ErrEmptySet を返します（空集合の最小値は定義できないため）。
func (s *Set) Remove(id ID) (Element, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Element{}, ErrNotFound
	}
	removed := s.elems[i]
	s.swapRemove(i)
	s.cfg.Metrics.IncRemove()
	s.cfg.Metrics.SetSize(len(s.elems))
	if s.cfg.Logger != nil {
		s.cfg.Logger.Debug("set.remove", "id", removed.ID.String())
	}
	if len(s.elems) == 0 {
		return Element{}, ErrEmptySet
	}
	return s.elems[s.lowestIndex()], nil
}

// GetValue は識別子に対応する値を返します。存在しない場合は ErrNotFound。
func (s *Set) GetValue(id ID) (uint256.Int, error) {
	i := s.indexOf(id)
	if i < 0 {
		s.cfg.Metrics.IncGetMiss()
		return uint256.Int{}, ErrNotFound
	}
	s.cfg.Metrics.IncGetHit()
	return s.elems[i].Value, nil
}

// Lowest は値が最小の要素を返します。同値が並ぶ場合は先頭側スロットの
// 要素です。セットが空の場合は ErrEmptySet を返します。
func (s *Set) Lowest() (Element, error) {
	if len(s.elems) == 0 {
		return Element{}, ErrEmptySet
	}
	return s.elems[s.lowestIndex()], nil
}
