package xtype

import (
	"errors"
	"fmt"
	"strconv"
)

// 值编解码错误，按 [Kind] 一一对应，支持 errors.Is 判断。
var (
	// ErrInvalidSize 表示二进制输入长度不足。
	ErrInvalidSize = errors.New("xtype: invalid size")

	// ErrInvalidZoneChar 表示二进制输入的 zone 含非字母数字字符。
	ErrInvalidZoneChar = errors.New("xtype: invalid zone character")

	// ErrHintMismatch 表示输入的格式提示与类型不符。
	ErrHintMismatch = errors.New("xtype: hint mismatch")

	// ErrLengthViolation 表示输入长度不满足长度约束。
	ErrLengthViolation = errors.New("xtype: length violation")

	// ErrPatternViolation 表示输入不满足模式约束。
	ErrPatternViolation = errors.New("xtype: pattern violation")

	// ErrAddressSyntax 表示地址文本无法解析。
	ErrAddressSyntax = errors.New("xtype: address syntax error")

	// ErrRender 表示生成规范文本失败。
	ErrRender = errors.New("xtype: render error")

	// ErrAllocation 表示分配失败（包括字典容量耗尽）。
	ErrAllocation = errors.New("xtype: allocation failure")
)

// 类型定义加载相关错误。
var (
	// ErrUnknownFormat 表示未知的值格式名称。
	ErrUnknownFormat = errors.New("xtype: unknown value format")

	// ErrUnsupportedFormat 表示不支持的类型定义文档格式。
	ErrUnsupportedFormat = errors.New("xtype: unsupported document format")

	// ErrLoadFailed 表示读取类型定义文件失败。
	ErrLoadFailed = errors.New("xtype: failed to load type definitions")

	// ErrParseFailed 表示类型定义文档解析失败。
	ErrParseFailed = errors.New("xtype: failed to parse type definitions")

	// ErrInvalidRestriction 表示长度或模式表达式无效。
	ErrInvalidRestriction = errors.New("xtype: invalid restriction")
)

// Kind 表示值编解码错误的类别。
type Kind uint8

const (
	// KindInvalidSize 二进制输入长度不足。
	KindInvalidSize Kind = iota + 1
	// KindInvalidZoneChar 二进制 zone 字符非法。
	KindInvalidZoneChar
	// KindHintMismatch 格式提示不符。
	KindHintMismatch
	// KindLengthViolation 长度约束不满足。
	KindLengthViolation
	// KindPatternViolation 模式约束不满足。
	KindPatternViolation
	// KindAddressSyntax 地址语法错误。
	KindAddressSyntax
	// KindRender 规范文本生成失败。
	KindRender
	// KindAllocation 分配失败。
	KindAllocation
)

// String 返回 Kind 的可读名称。
func (k Kind) String() string {
	switch k {
	case KindInvalidSize:
		return "invalid size"
	case KindInvalidZoneChar:
		return "invalid zone character"
	case KindHintMismatch:
		return "hint mismatch"
	case KindLengthViolation:
		return "length violation"
	case KindPatternViolation:
		return "pattern violation"
	case KindAddressSyntax:
		return "address syntax error"
	case KindRender:
		return "render error"
	case KindAllocation:
		return "allocation failure"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// sentinel 返回 k 对应的预定义错误变量。
func (k Kind) sentinel() error {
	switch k {
	case KindInvalidSize:
		return ErrInvalidSize
	case KindInvalidZoneChar:
		return ErrInvalidZoneChar
	case KindHintMismatch:
		return ErrHintMismatch
	case KindLengthViolation:
		return ErrLengthViolation
	case KindPatternViolation:
		return ErrPatternViolation
	case KindAddressSyntax:
		return ErrAddressSyntax
	case KindRender:
		return ErrRender
	case KindAllocation:
		return ErrAllocation
	default:
		return nil
	}
}

// Error 是编解码器报告的错误。
//
// errors.Is(err, ErrXxx) 按 Kind 匹配；Err 保存底层原因（可为 nil），
// 可继续通过 errors.Is/As 检查。
type Error struct {
	// Kind 错误类别。
	Kind Kind
	// Msg 描述性消息。
	Msg string
	// AppTag 约束上配置的 error-app-tag，未配置时为空。
	AppTag string
	// Err 底层原因。
	Err error
}

// Error 实现 error 接口。
func (e *Error) Error() string {
	return "xtype: " + e.Kind.String() + ": " + e.Msg
}

// Is 报告 target 是否为 e.Kind 对应的预定义错误。
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Unwrap 返回底层原因。
func (e *Error) Unwrap() error {
	return e.Err
}

// Report 构造一个 [Error]，消息按 fmt.Sprintf 格式化。
func Report(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// ReportCause 与 Report 相同，并记录底层原因。
func ReportCause(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}
