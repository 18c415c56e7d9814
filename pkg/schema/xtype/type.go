package xtype

import (
	"unicode/utf8"
)

// Metadata 是编解码器消费的类型元数据接口。[*Type] 实现了此接口。
type Metadata interface {
	// LengthConstraint 返回长度约束，未配置时返回 nil。
	LengthConstraint() *Length
	// PatternSet 返回模式约束集合，未配置时返回 nil。
	PatternSet() []*Pattern
	// CheckHints 校验输入的格式提示。
	CheckHints(value []byte, hints Hints) error
}

// Type 是一个已解析的派生类型：名称加上字符串约束。
//
// 编解码器把 *Type 作为值的"实际类型"保存，比较两个值时按指针判断类型是否相同，
// 因此同一类型在进程内应只存在一个 *Type 实例。
type Type struct {
	// Name 类型名称，仅用于诊断。
	Name string
	// Length 长度约束，nil 表示不限制。
	Length *Length
	// Patterns 模式约束，全部满足才通过。
	Patterns []*Pattern
}

// LengthConstraint 实现 [Metadata]。
func (t *Type) LengthConstraint() *Length {
	if t == nil {
		return nil
	}
	return t.Length
}

// PatternSet 实现 [Metadata]。
func (t *Type) PatternSet() []*Pattern {
	if t == nil {
		return nil
	}
	return t.Patterns
}

// CheckHints 实现 [Metadata]。所有字符串派生类型使用 [CheckStringHints]。
func (t *Type) CheckHints(value []byte, hints Hints) error {
	return CheckStringHints(value, hints)
}

// Validate 按 格式提示 → 长度 → 模式 的顺序校验文本输入。
// t 为 nil 时只校验格式提示。
func (t *Type) Validate(value []byte, hints Hints) error {
	return Validate(t, value, hints)
}

// Validate 使用任意 [Metadata] 校验文本输入，顺序同 [Type.Validate]。
// 长度按 UTF-8 字符数而非字节数计算。
func Validate(md Metadata, value []byte, hints Hints) error {
	if md == nil {
		return CheckStringHints(value, hints)
	}
	if err := md.CheckHints(value, hints); err != nil {
		return err
	}
	if l := md.LengthConstraint(); l != nil {
		n := utf8.RuneCount(value)
		if !l.Check(uint64(n)) {
			e := Report(KindLengthViolation, "unsatisfied length - string %q length is not allowed", value)
			if l.ErrorMessage != "" {
				e.Msg = l.ErrorMessage
			}
			e.AppTag = l.ErrorAppTag
			return e
		}
	}
	for _, p := range md.PatternSet() {
		if p.Match(value) {
			continue
		}
		var e *Error
		if p.InvertMatch {
			e = Report(KindPatternViolation, "unsatisfied pattern - %q does not conform to inverted %q", value, p.expr)
		} else {
			e = Report(KindPatternViolation, "unsatisfied pattern - %q does not conform to %q", value, p.expr)
		}
		if p.ErrorMessage != "" {
			e.Msg = p.ErrorMessage
		}
		e.AppTag = p.ErrorAppTag
		return e
	}
	return nil
}

// 编译期接口检查。
var _ Metadata = (*Type)(nil)
