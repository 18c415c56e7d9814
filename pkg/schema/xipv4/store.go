package xipv4

import (
	"github.com/omeyang/xvalue/pkg/schema/xtype"
	"github.com/omeyang/xvalue/pkg/util/xdict"
	"github.com/omeyang/xvalue/pkg/util/xnet"
)

// binaryAddrLen 是二进制形式中地址字段的长度。
const binaryAddrLen = 4

// Store 解析并校验 in，返回新值。
//
// in.Owned 非 nil 时缓冲区在所有路径上恰好被消费一次，包括返回错误时。
// 失败时已驻留的 zone 会被释放，不返回任何部分构造的值。
// 已被消费过的 in.Owned 报告为 KindAllocation，原因为 xdict.ErrConsumed。
func (c *Codec) Store(typ *xtype.Type, in xtype.Input) (*Value, error) {
	defer in.Release()

	if in.Owned != nil && in.Owned.Consumed() {
		return nil, xtype.ReportCause(xtype.KindAllocation, xdict.ErrConsumed,
			"ipv4-address input buffer already consumed")
	}

	var (
		v   *Value
		err error
	)
	switch in.Format {
	case xtype.FormatBinary:
		v, err = c.storeBinary(typ, in.Bytes())
	case xtype.FormatText:
		v, err = c.storeText(typ, in)
	default:
		err = unknownFormat(in.Format)
	}
	if err != nil {
		c.logger.Debug("xipv4: store rejected",
			"format", in.Format.String(),
			"type", typeName(typ),
			"error", err)
		return nil, err
	}
	return v, nil
}

func (c *Codec) storeBinary(typ *xtype.Type, b []byte) (*Value, error) {
	if len(b) < binaryAddrLen {
		return nil, xtype.Report(xtype.KindInvalidSize,
			"invalid binary ipv4-address value size %d (expected at least %d)", len(b), binaryAddrLen)
	}
	zone := b[binaryAddrLen:]
	for _, ch := range zone {
		if !isAlnum(ch) {
			return nil, xtype.Report(xtype.KindInvalidZoneChar,
				"invalid binary ipv4-address zone character 0x%x", ch)
		}
	}

	st := &storage{}
	copy(st.addr[:], b[:binaryAddrLen])
	if len(zone) > 0 {
		ref, err := c.intern(zone, "zone")
		if err != nil {
			return nil, err
		}
		st.zone = ref
	}
	return &Value{typ: typ, data: st}, nil
}

func (c *Codec) storeText(typ *xtype.Type, in xtype.Input) (*Value, error) {
	value := in.Bytes()
	if err := typ.Validate(value, in.Hints); err != nil {
		return nil, err
	}

	addrText, zoneText, hasZone := xnet.SplitZoneBytes(value)
	st := &storage{}
	if hasZone {
		ref, err := c.intern(zoneText, "zone")
		if err != nil {
			return nil, err
		}
		st.zone = ref
	}

	addr, err := xnet.ParseIPv4(string(addrText))
	if err != nil {
		c.release(st.zone)
		return nil, xtype.ReportCause(xtype.KindAddressSyntax, err,
			"failed to convert IPv4 address %q", addrText)
	}
	st.addr = addr

	// 输入即规范文本，原样驻留。
	var canonical xdict.Ref
	if in.Owned != nil {
		canonical, err = c.dict.InsertOwned(in.Owned)
	} else {
		canonical, err = c.dict.Insert(value)
	}
	if err != nil {
		c.release(st.zone)
		return nil, xtype.ReportCause(xtype.KindAllocation, err,
			"failed to intern ipv4-address canonical value")
	}
	return &Value{typ: typ, data: st, canonical: canonical}, nil
}

func isAlnum(ch byte) bool {
	return ('0' <= ch && ch <= '9') || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func typeName(t *xtype.Type) string {
	if t == nil {
		return ""
	}
	return t.Name
}
