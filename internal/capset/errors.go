package capset

import "errors"

var (
	// ErrInvalidCapacity は容量が 1 未満で構築しようとしたときに返されます。
	ErrInvalidCapacity = errors.New("capset: capacity must be positive")
	// ErrNotFound は指定した識別子がセットに存在しないときに返されます。
	ErrNotFound = errors.New("capset: identifier not found")
	// ErrEmptySet は空のセットに対して最小要素を求めたときに返されます。
	ErrEmptySet = errors.New("capset: set is empty")
	// ErrInvalidID は識別子の文字列表現が不正なときに返されます。
	ErrInvalidID = errors.New("capset: invalid identifier")
)
