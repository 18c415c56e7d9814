package xtype

import (
	"fmt"
	"strconv"
)

// Format 表示值的外部表示格式。
type Format uint8

const (
	// FormatText 文本形式（JSON/XML 中的规范字符串）。
	FormatText Format = iota
	// FormatBinary 紧凑二进制形式（定长字段 + 变长尾部，无填充）。
	FormatBinary
)

// String 返回格式名称。
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatBinary:
		return "binary"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// ParseFormat 解析格式名称（"text" 或 "binary"）。
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text":
		return FormatText, nil
	case "binary":
		return FormatBinary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Hints 是输入数据的格式提示位掩码，描述原始输入在源文档中的语法形态。
// 零值表示源格式不携带类型信息（如 XML），此时任何类型都接受。
type Hints uint32

const (
	// HintString 输入在源文档中是字符串。
	HintString Hints = 1 << iota
	// HintInteger 输入是 32 位及以下整数。
	HintInteger
	// HintDecimal 输入是十进制小数。
	HintDecimal
	// HintBoolean 输入是布尔值。
	HintBoolean
	// HintEmpty 输入是空值。
	HintEmpty
	// HintNum64 输入是以字符串编码的 64 位数值。
	HintNum64
)

// CheckStringHints 校验基于字符串的类型的格式提示。
// hints 为零时通过；否则必须包含 [HintString]，不包含时返回 [ErrHintMismatch]。
func CheckStringHints(value []byte, hints Hints) error {
	if hints == 0 || hints&HintString != 0 {
		return nil
	}
	return Report(KindHintMismatch, "invalid non-string-encoded string value %q", value)
}
