package xipv4

import "github.com/omeyang/xvalue/pkg/util/xdict"

// Duplicate 复制 v。规范文本与 zone 在字典中共享同一条目（引用计数加一），
// 地址存储重新分配。失败时已获取的引用全部释放。
func (c *Codec) Duplicate(v *Value) (*Value, error) {
	if v.IsZero() {
		return &Value{typ: v.Type()}, nil
	}

	var canonical xdict.Ref
	if !v.canonical.IsNil() {
		ref, err := c.intern(v.canonical.Bytes(), "canonical value")
		if err != nil {
			return nil, err
		}
		canonical = ref
	}

	st := &storage{addr: v.data.addr}
	if !v.data.zone.IsNil() {
		ref, err := c.intern(v.data.zone.Bytes(), "zone")
		if err != nil {
			c.release(canonical)
			return nil, err
		}
		st.zone = ref
	}
	return &Value{typ: v.typ, data: st, canonical: canonical}, nil
}

// Free 释放 v 持有的规范文本、zone 与地址存储。
// 对 nil 或零值是 no-op。
func (c *Codec) Free(v *Value) {
	if v == nil {
		return
	}
	c.release(v.canonical)
	v.canonical = xdict.Ref{}
	if v.data != nil {
		c.release(v.data.zone)
		v.data = nil
	}
}
