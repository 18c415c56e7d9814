package xtype

import (
	"fmt"
	"regexp"
)

// Pattern 是模式约束：一个隐式锚定整串的正则表达式。
type Pattern struct {
	expr string
	re   *regexp.Regexp
	// InvertMatch 为 true 时要求输入不匹配。
	InvertMatch bool
	// ErrorMessage 和 ErrorAppTag 来自约束定义，可为空。
	ErrorMessage string
	ErrorAppTag  string
}

// CompilePattern 编译模式表达式。表达式两端自动加锚点，无需手写 ^ 与 $。
func CompilePattern(expr string) (*Pattern, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %w", ErrInvalidRestriction, expr, err)
	}
	return &Pattern{expr: expr, re: re}, nil
}

// MustCompilePattern 与 CompilePattern 相同，但失败时 panic。
func MustCompilePattern(expr string) *Pattern {
	p, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Match 报告 value 是否满足该约束（已考虑 InvertMatch）。
func (p *Pattern) Match(value []byte) bool {
	return p.re.Match(value) != p.InvertMatch
}

// String 返回原始表达式。
func (p *Pattern) String() string {
	return p.expr
}
