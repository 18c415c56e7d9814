// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xdict: 分片、按内容去重、带引用计数的字符串驻留表，支持零拷贝插入
//   - xnet: IPv4 工具，基于 net/netip 的 zone 拆分、严格点分解析与格式化
//   - xpool: 泛型 Worker Pool，可配置 worker/队列大小、优雅关闭
package util
