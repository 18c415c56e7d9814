package xtype

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Interval 是闭区间 [Min, Max]。
type Interval struct {
	Min uint64
	Max uint64
}

// Length 是长度约束：若干个升序、不相交的闭区间的并集。
type Length struct {
	expr      string
	intervals []Interval
	// ErrorMessage 和 ErrorAppTag 来自约束定义，可为空。
	ErrorMessage string
	ErrorAppTag  string
}

// ParseLength 解析 YANG 长度表达式，如 "1..10 | 20..max"、"min..5"、"7"。
// min 表示 0，max 表示 math.MaxUint64。
func ParseLength(expr string) (*Length, error) {
	parts := strings.Split(expr, "|")
	l := &Length{expr: strings.TrimSpace(expr), intervals: make([]Interval, 0, len(parts))}
	for _, part := range parts {
		iv, err := parseInterval(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: length %q: %w", ErrInvalidRestriction, expr, err)
		}
		if n := len(l.intervals); n > 0 && iv.Min <= l.intervals[n-1].Max {
			return nil, fmt.Errorf("%w: length %q: intervals must be ascending and disjoint",
				ErrInvalidRestriction, expr)
		}
		l.intervals = append(l.intervals, iv)
	}
	return l, nil
}

// MustParseLength 与 ParseLength 相同，但失败时 panic。
func MustParseLength(expr string) *Length {
	l, err := ParseLength(expr)
	if err != nil {
		panic(err)
	}
	return l
}

func parseInterval(s string) (Interval, error) {
	if s == "" {
		return Interval{}, errors.New("empty interval")
	}
	lo, hi, found := strings.Cut(s, "..")
	minV, err := parseBound(strings.TrimSpace(lo))
	if err != nil {
		return Interval{}, err
	}
	if !found {
		return Interval{Min: minV, Max: minV}, nil
	}
	maxV, err := parseBound(strings.TrimSpace(hi))
	if err != nil {
		return Interval{}, err
	}
	if minV > maxV {
		return Interval{}, fmt.Errorf("interval %q: min > max", s)
	}
	return Interval{Min: minV, Max: maxV}, nil
}

func parseBound(s string) (uint64, error) {
	switch s {
	case "min":
		return 0, nil
	case "max":
		return math.MaxUint64, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bound %q: %w", s, err)
	}
	return v, nil
}

// Check 报告 n 是否落在任一区间内。
func (l *Length) Check(n uint64) bool {
	if l == nil {
		return true
	}
	for _, iv := range l.intervals {
		if n < iv.Min {
			return false
		}
		if n <= iv.Max {
			return true
		}
	}
	return false
}

// Intervals 返回区间列表的副本。
func (l *Length) Intervals() []Interval {
	return append([]Interval(nil), l.intervals...)
}

// String 返回原始表达式。
func (l *Length) String() string {
	return l.expr
}
