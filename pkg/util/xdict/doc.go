// Package xdict 提供进程内的字符串驻留字典（interned-string table）。
//
// 字典按内容去重存储字符串，每个条目带引用计数。调用方通过 [Ref] 持有条目，
// 用完后必须显式调用 [Dict.Remove] 释放；引用计数归零时条目被回收。
//
// # 去重契约
//
// 在条目存活期间，相同内容永远映射到同一个条目，因此两个 [Ref] 的 == 比较
// 等价于内容比较。xipv4 等值编解码器依赖这一点用引用比较代替字节比较。
// 不得用不去重的字符串池替换 [Dict] 的实现，否则值比较会静默失效。
//
// # 插入方式
//
//   - [Dict.Insert] / [Dict.InsertString]：复制插入，调用方保留原缓冲区
//   - [Dict.InsertOwned]：零拷贝插入，接管 [Owned] 缓冲区的所有权。
//     内容已存在时缓冲区被立即丢弃，共享已有条目；出错时缓冲区同样被消费
//
// # 所有权
//
// [Owned] 描述一次所有权转移：它只能被消费一次，要么被字典吸收，要么被
// [Owned.Drop] 丢弃。通过 [OwnFunc] 注册的 release 回调恰好执行一次：
// 丢弃时立即执行，被吸收时在条目回收后执行，适合把缓冲区归还到 sync.Pool。
//
// # 并发安全
//
// 所有方法都是并发安全的。条目按 xxhash 分片，默认 32 分片，
// 每个分片独立加锁，减少争用。
//
// # 指标
//
// 通过 [WithMeterProvider] 注册两个 OTel 观测型 Gauge：
//
//	xvalue.dict.entries  存活条目数
//	xvalue.dict.refs     存活引用总数
package xdict
