// Package xnet 提供 IPv4 地址文本工具。
//
// xnet 基于 Go 标准库 [net/netip] 构建，服务于 IPv4 值编解码：
//
//   - parse.go: [SplitZone] 拆分 "A.B.C.D%zone"，[ParseIPv4] 严格解析点分四段
//   - format.go: [AppendIPv4]/[FormatIPv4] 点分四段输出，[FormatFullIPv4]/[ParseFullIPv4] 定宽形式
//   - convert.go: [IPv4FromUint32]/[Uint32FromIPv4] 与 [netip.Addr] 互转
//
// # 快速示例
//
//	addr, zone, hasZone := xnet.SplitZone("198.51.100.7%eth0")
//	b, _ := xnet.ParseIPv4(addr)           // [198 51 100 7]
//	fmt.Println(zone, hasZone)             // eth0 true
//	fmt.Println(xnet.FormatIPv4(b))        // 198.51.100.7
//	fmt.Println(xnet.FormatFullIPv4(b))    // 198.051.100.007
//
// # 设计决策
//
//   - 地址使用 [4]byte 网络字节序：值语义、可比较，可直接作为二进制线格式
//   - [ParseIPv4] 语义与 inet_pton(AF_INET) 一致：恰好四段十进制，每段 0–255，
//     拒绝前导零、IPv6、IPv4-mapped IPv6 与 zone
//   - zone 拆分以第一个 '%' 为界，zone 内容不做字符校验
//   - 所有可失败函数返回 error，预定义错误变量支持 errors.Is
//
// # 错误处理
//
//	_, err := xnet.ParseIPv4("999.0.0.1")
//	if errors.Is(err, xnet.ErrInvalidAddress) {
//	    // 处理无效地址，err.Error() 包含原始文本
//	}
package xnet
