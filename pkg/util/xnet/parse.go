package xnet

import (
	"fmt"
	"net/netip"
	"strings"
)

// SplitZone 以第一个 '%' 拆分 s。
// 存在 '%' 时返回其前后两部分且 hasZone 为 true；zone 可以为空（"192.0.2.1%"）。
// 不存在时返回 (s, "", false)。
func SplitZone(s string) (addr, zone string, hasZone bool) {
	addr, zone, hasZone = strings.Cut(s, "%")
	return addr, zone, hasZone
}

// SplitZoneBytes 与 SplitZone 相同，作用于字节切片，返回的切片与 b 共享内存。
func SplitZoneBytes(b []byte) (addr, zone []byte, hasZone bool) {
	for i, c := range b {
		if c == '%' {
			return b[:i], b[i+1:], true
		}
	}
	return b, nil, false
}

// ParseIPv4 严格解析点分四段 IPv4 地址，返回网络字节序的 4 字节。
//
// 只接受 "A.B.C.D" 形式，每段为不带前导零的 0–255 十进制数。
// IPv6、IPv4-mapped IPv6（"::ffff:1.2.3.4"）和带 zone 的输入都会被拒绝。
// 错误包装 [ErrInvalidAddress] 并包含原始文本。
func ParseIPv4(s string) ([4]byte, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return [4]byte{}, fmt.Errorf("%w %q: %w", ErrInvalidAddress, s, err)
	}
	if !addr.Is4() {
		return [4]byte{}, fmt.Errorf("%w %q: %w", ErrInvalidAddress, s, ErrNotIPv4)
	}
	return addr.As4(), nil
}

// MustParseIPv4 与 ParseIPv4 相同，但失败时 panic。
func MustParseIPv4(s string) [4]byte {
	b, err := ParseIPv4(s)
	if err != nil {
		panic(err)
	}
	return b
}
