package xipv4

import (
	"fmt"
	"log/slog"

	"github.com/omeyang/xvalue/pkg/schema/xtype"
	"github.com/omeyang/xvalue/pkg/util/xdict"
)

// Codec 是 IPv4 地址值编解码器。
type Codec struct {
	dict   Interner
	logger *slog.Logger
}

// 编译期接口检查。
var _ xtype.Codec[*Value] = (*Codec)(nil)

// New 创建使用 dict 驻留 zone 与规范文本的 Codec。
// dict 必须比所有由该 Codec 创建的值活得更久。
func New(dict Interner, opts ...Option) (*Codec, error) {
	if dict == nil {
		return nil, ErrNilInterner
	}
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Codec{dict: dict, logger: o.logger}, nil
}

// intern 复制驻留 b，失败映射为分配错误。
func (c *Codec) intern(b []byte, what string) (xdict.Ref, error) {
	ref, err := c.dict.Insert(b)
	if err != nil {
		return xdict.Ref{}, xtype.ReportCause(xtype.KindAllocation, err, "failed to intern ipv4-address %s", what)
	}
	return ref, nil
}

// release 释放非空引用。
func (c *Codec) release(r xdict.Ref) {
	if !r.IsNil() {
		c.dict.Remove(r)
	}
}

func unknownFormat(f xtype.Format) error {
	return fmt.Errorf("%w: %s", xtype.ErrUnknownFormat, f)
}
