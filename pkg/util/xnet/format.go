package xnet

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// AppendIPv4 把 a 的点分四段形式追加到 dst。
func AppendIPv4(dst []byte, a [4]byte) []byte {
	return netip.AddrFrom4(a).AppendTo(dst)
}

// FormatIPv4 返回 a 的点分四段形式，如 "192.0.2.1"。
func FormatIPv4(a [4]byte) string {
	return netip.AddrFrom4(a).String()
}

// FormatFullIPv4 返回定宽形式：每段 3 位十进制，带前导零（如 "192.000.002.001"）。
func FormatFullIPv4(a [4]byte) string {
	// 定长缓冲，避免 fmt.Sprintf。
	var buf [15]byte // "xxx.xxx.xxx.xxx"
	for i := range 4 {
		off := i * 4
		if i > 0 {
			buf[off-1] = '.'
		}
		buf[off+0] = '0' + a[i]/100
		buf[off+1] = '0' + (a[i]/10)%10
		buf[off+2] = '0' + a[i]%10
	}
	return string(buf[:])
}

// ParseFullIPv4 解析定宽形式（允许前导零，每段 1–3 位）。
// 拒绝带有空白、+ 或 - 前缀的段。
func ParseFullIPv4(s string) ([4]byte, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return [4]byte{}, fmt.Errorf("%w %q: want 4 octets", ErrInvalidAddress, s)
	}
	var b [4]byte
	for i, p := range parts {
		if p == "" || len(p) > 3 {
			return [4]byte{}, fmt.Errorf("%w %q: invalid octet %q", ErrInvalidAddress, s, p)
		}
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return [4]byte{}, fmt.Errorf("%w %q: invalid octet %q", ErrInvalidAddress, s, p)
		}
		b[i] = byte(n)
	}
	return b, nil
}
