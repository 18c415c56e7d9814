package xnet

import (
	"encoding/binary"
	"net/netip"
)

// IPv4FromUint32 从 uint32（网络字节序，大端）构造 4 字节地址。
func IPv4FromUint32(v uint32) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return b
}

// Uint32FromIPv4 把 4 字节地址转换为 uint32（网络字节序，大端）。
func Uint32FromIPv4(a [4]byte) uint32 {
	return binary.BigEndian.Uint32(a[:])
}

// AddrOf 返回 a 对应的 [netip.Addr]。
func AddrOf(a [4]byte) netip.Addr {
	return netip.AddrFrom4(a)
}

// IPv4Of 把 [netip.Addr] 转换为 4 字节地址。
// IPv4-mapped IPv6 地址先解除映射；其他非 IPv4 地址返回 (零值, false)。
func IPv4Of(addr netip.Addr) ([4]byte, bool) {
	if addr.Is4In6() {
		addr = addr.Unmap()
	}
	if !addr.Is4() {
		return [4]byte{}, false
	}
	return addr.As4(), true
}
