package xipv4

import (
	"net/netip"

	"github.com/omeyang/xvalue/pkg/schema/xtype"
	"github.com/omeyang/xvalue/pkg/util/xdict"
)

// storage 是值的地址与 zone。
type storage struct {
	addr [4]byte
	// zone 为空引用表示没有 zone；非空但长度为 0 表示 "A.B.C.D%"。
	zone xdict.Ref
}

// Value 是一个 IPv4 地址值。
//
// Value 只能由 [Codec.Store] 或 [Codec.Duplicate] 创建，由 [Codec.Free] 销毁。
// 零值 Value 合法，表示尚未存储任何内容。
type Value struct {
	typ  *xtype.Type
	data *storage
	// canonical 惰性计算，写入一次后在值销毁前不再变化。
	canonical xdict.Ref
}

// Type 返回值的实际类型。
func (v *Value) Type() *xtype.Type {
	if v == nil {
		return nil
	}
	return v.typ
}

// IsZero 报告 v 是否未存储任何内容（nil、零值或已 Free）。
func (v *Value) IsZero() bool {
	return v == nil || v.data == nil
}

// Addr 返回地址。零值返回无效的 netip.Addr。
func (v *Value) Addr() netip.Addr {
	if v.IsZero() {
		return netip.Addr{}
	}
	return netip.AddrFrom4(v.data.addr)
}

// Zone 返回 zone 及其是否存在。
// "192.0.2.1%" 返回 ("", true)，"192.0.2.1" 返回 ("", false)。
func (v *Value) Zone() (string, bool) {
	if v.IsZero() || v.data.zone.IsNil() {
		return "", false
	}
	return v.data.zone.String(), true
}

// Canonical 返回已缓存的规范文本。尚未计算时返回 ("", false)，不触发计算。
func (v *Value) Canonical() (string, bool) {
	if v == nil || v.canonical.IsNil() {
		return "", false
	}
	return v.canonical.String(), true
}
