package xipv4

import (
	"github.com/omeyang/xvalue/pkg/schema/xtype"
	"github.com/omeyang/xvalue/pkg/util/xdict"
	"github.com/omeyang/xvalue/pkg/util/xnet"
)

// Print 以 format 输出 v。
//
// 二进制形式：没有 zone 时借用值内部的 4 字节；有 zone 时新分配 4+len(zone) 字节。
// 文本形式：返回缓存的规范文本（借用）；未缓存时生成、驻留并缓存后返回。
// 失败不修改 v，之后可以重试。
func (c *Codec) Print(v *Value, format xtype.Format) (xtype.Output, error) {
	if v.IsZero() {
		return xtype.Output{}, xtype.Report(xtype.KindRender, "cannot print an empty ipv4-address value")
	}
	switch format {
	case xtype.FormatBinary:
		return printBinary(v.data), nil
	case xtype.FormatText:
		return c.printText(v)
	default:
		return xtype.Output{}, unknownFormat(format)
	}
}

func printBinary(st *storage) xtype.Output {
	if st.zone.IsNil() {
		return xtype.Output{Data: st.addr[:]}
	}
	buf := make([]byte, 0, binaryAddrLen+st.zone.Len())
	buf = append(buf, st.addr[:]...)
	buf = append(buf, st.zone.Bytes()...)
	return xtype.Output{Data: buf, Dynamic: true}
}

func (c *Codec) printText(v *Value) (xtype.Output, error) {
	if !v.canonical.IsNil() {
		return xtype.Output{Data: v.canonical.Bytes()}, nil
	}

	buf := render(v.data)
	ref, err := c.dict.InsertOwned(xdict.Own(buf))
	if err != nil {
		return xtype.Output{}, xtype.ReportCause(xtype.KindAllocation, err,
			"failed to intern ipv4-address canonical value")
	}
	v.canonical = ref
	return xtype.Output{Data: ref.Bytes()}, nil
}

// render 生成 "A.B.C.D" 或 "A.B.C.D%zone"。
func render(st *storage) []byte {
	// "255.255.255.255" 最长 15 字节。
	buf := make([]byte, 0, 16+st.zone.Len())
	buf = xnet.AppendIPv4(buf, st.addr)
	if !st.zone.IsNil() {
		buf = append(buf, '%')
		buf = append(buf, st.zone.Bytes()...)
	}
	return buf
}
