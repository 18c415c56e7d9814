// Package schema 提供值类型相关的子包。
//
// 子包列表：
//   - xtype: 类型元数据（长度、模式、提示位）、编解码器契约与错误报告
//   - xipv4: 带可选 zone 的 IPv4 地址值编解码器
package schema
