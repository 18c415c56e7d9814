package xipv4

import "errors"

// ErrNilInterner 表示创建 Codec 时未提供驻留字典。
var ErrNilInterner = errors.New("xipv4: nil interner")
