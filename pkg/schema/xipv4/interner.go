package xipv4

import "github.com/omeyang/xvalue/pkg/util/xdict"

// Interner 是编解码器使用的驻留字典子集。[xdict.Dict] 实现了此接口。
//
// 实现必须按内容去重：相同内容在条目存活期间总是返回同一个引用，
// [Codec.Compare] 以引用相等代替内容相等。
type Interner interface {
	// Insert 复制插入 b，返回引用。
	Insert(b []byte) (xdict.Ref, error)
	// InsertOwned 零拷贝插入 o，无论成功与否都消费 o。
	InsertOwned(o *xdict.Owned) (xdict.Ref, error)
	// Remove 释放一个引用。
	Remove(r xdict.Ref)
}

var _ Interner = (xdict.Dict)(nil)
