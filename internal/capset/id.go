package capset

import (
	"encoding/hex"
	"strings"
)

// IDLen は識別子のバイト長です。
const IDLen = 20

// ID はセットの要素を指す固定長の不透明な識別子を表します。
// ゼロ値（NullID）は「実在する最小要素がない」ことを示す番兵として使います。
type ID [IDLen]byte

// NullID は番兵として使うゼロ値の識別子です。
var NullID ID

// IsNull は識別子が番兵（ゼロ値）かどうかを返します。
func (id ID) IsNull() bool { return id == NullID }

// String は識別子を 0x 付き16進文字列で返します。
func (id ID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// ParseID は16進文字列（0x プレフィックス任意）から ID を復元します。
func ParseID(s string) (ID, error) {
	var id ID
	s = strings.TrimPrefix(s, "0x")
	if len(s) != IDLen*2 {
		return id, ErrInvalidID
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, ErrInvalidID
	}
	copy(id[:], b)
	return id, nil
}
