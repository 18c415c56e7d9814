// Package xipv4 实现带可选 zone 的 IPv4 地址值编解码器。
//
// 一个值由 4 字节网络序地址、可选 zone 和惰性缓存的规范文本组成。
// zone 与规范文本都是驻留字典（[xdict.Dict]）中的引用，值之间共享同一内容的条目。
//
// # 格式
//
// 文本形式为 "A.B.C.D" 或 "A.B.C.D%zone"，以第一个 '%' 拆分地址与 zone，
// zone 可以为空（"192.0.2.1%"），与"没有 zone"是不同的值。
//
// 二进制形式为 4 字节地址后紧跟 zone 原始字符，无分隔符，长度即定界：
//
//	offset 0  size 4    IPv4 地址，网络字节序
//	offset 4  size 0+   zone，仅限 ASCII 字母数字
//
// # 规范文本
//
// 文本输入本身就是规范形式，Store 时立即驻留原始输入；
// 二进制输入不计算规范文本，首次以文本 Print 时生成并缓存。
//
// # 相等性
//
// 两个值相等当且仅当类型指针相同、地址相同且 zone 引用相同。
// 这依赖驻留字典按内容去重的保证：相同内容的 zone 必然是同一条目。
//
// # 所有权
//
// [xtype.Input] 携带 Owned 缓冲区时，Store 在每条退出路径上恰好消费一次：
// 文本输入成功时零拷贝吸收为规范文本，其余情况丢弃。
//
// # 并发
//
// Codec 本身无状态，可并发使用。同一个值的 Print 可能写入规范文本缓存，
// 调用方需要串行化对同一值的写操作。
package xipv4
