package xipv4

import (
	"github.com/cespare/xxhash/v2"

	"github.com/omeyang/xvalue/pkg/schema/xtype"
)

// Compare 报告 a 与 b 是否相等：类型相同、地址相同且 zone 引用相同。
// 只定义相等，不定义顺序。
func (c *Codec) Compare(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.typ != b.typ {
		return false
	}
	if a.data == nil || b.data == nil {
		return a.data == b.data
	}
	return a.data.addr == b.data.addr && a.data.zone == b.data.zone
}

// Hash 返回 v 的哈希键，即其二进制形式。相等的值必然得到相同的哈希键。
func (c *Codec) Hash(v *Value) (xtype.Output, error) {
	return c.Print(v, xtype.FormatBinary)
}

// Sum64 返回哈希键的 xxhash 摘要，适合作为哈希表的桶索引。
func (c *Codec) Sum64(v *Value) (uint64, error) {
	key, err := c.Hash(v)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(key.Data), nil
}
