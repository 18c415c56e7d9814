package xdict

import (
	"io"
	"unsafe"
)

// Ref 是字典条目的引用。
//
// 零值 Ref 表示空引用（"没有字符串"），与空字符串条目不同：
// 插入 "" 得到的是非空引用，其 Len 为 0。
// Ref 可直接用 == 比较，相等当且仅当指向同一条目。
type Ref struct {
	e *entry
}

// IsNil 报告 r 是否为空引用。
func (r Ref) IsNil() bool {
	return r.e == nil
}

// String 返回条目内容。空引用返回 ""。
func (r Ref) String() string {
	if r.e == nil {
		return ""
	}
	return r.e.s
}

// Len 返回条目内容的字节长度。空引用返回 0。
func (r Ref) Len() int {
	if r.e == nil {
		return 0
	}
	return len(r.e.s)
}

// Bytes 返回条目内容的只读字节视图，不分配内存。
// 返回的切片与字典共享底层内存，调用方不得修改。
// 空引用返回 nil，空字符串条目返回长度为 0 的非 nil 切片。
func (r Ref) Bytes() []byte {
	if r.e == nil {
		return nil
	}
	if len(r.e.s) == 0 {
		return []byte{}
	}
	return unsafe.Slice(unsafe.StringData(r.e.s), len(r.e.s))
}

// Dict 是按内容去重、带引用计数的字符串驻留字典。
// 所有方法都是并发安全的。
type Dict interface {
	io.Closer

	// Insert 复制插入 b 的内容并返回引用。
	// 内容已存在时引用计数加一并返回已有条目。
	// nil 与空切片都插入空字符串条目。
	Insert(b []byte) (Ref, error)

	// InsertString 与 Insert 相同，接受字符串。
	InsertString(s string) (Ref, error)

	// InsertOwned 零拷贝插入 o 持有的缓冲区。
	//
	// 无论成功与否 o 都会被消费：内容不存在时缓冲区直接成为条目的存储；
	// 内容已存在或返回错误时缓冲区被丢弃。o 已被消费时返回 [ErrConsumed]。
	// 插入后调用方不得再修改原缓冲区。
	InsertOwned(o *Owned) (Ref, error)

	// Remove 释放 r 持有的一个引用，引用计数归零时回收条目。
	// 空引用是 no-op。对已回收的条目重复释放会记录告警并忽略。
	// Close 后仍可调用。
	Remove(r Ref)

	// Len 返回当前存活条目数（单次原子读取）。
	Len() int

	// Refs 返回内容 s 对应条目的引用计数，不存在时返回 0。
	// 主要用于测试与调试。
	Refs(s string) int
}

// New 创建一个新的 Dict 实例。
// 配置无效时返回错误（如分片数不是 2 的幂、指标注册失败）。
func New(opts ...Option) (Dict, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return newDictImpl(o)
}
