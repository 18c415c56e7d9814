package xnet

import "errors"

var (
	// ErrInvalidAddress 表示无效的 IPv4 地址字符串。
	ErrInvalidAddress = errors.New("xnet: invalid IPv4 address")

	// ErrNotIPv4 表示地址不是纯 IPv4 地址。
	ErrNotIPv4 = errors.New("xnet: not an IPv4 address")
)
