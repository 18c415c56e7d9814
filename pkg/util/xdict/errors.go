package xdict

import "errors"

var (
	// ErrClosed 表示字典已关闭。
	// Close 后调用 Insert/InsertString/InsertOwned 返回此错误。
	ErrClosed = errors.New("xdict: closed")

	// ErrCapacity 表示已达到最大条目数限制，等同于一次分配失败。
	ErrCapacity = errors.New("xdict: capacity exceeded")

	// ErrConsumed 表示 Owned 缓冲区已被消费（吸收或丢弃）。
	ErrConsumed = errors.New("xdict: owned buffer already consumed")

	// ErrInvalidShardCount 表示分片数不是正的 2 的幂或超过上限。
	ErrInvalidShardCount = errors.New("xdict: invalid shard count")

	// ErrRegisterMetrics 表示注册 OTel 指标失败。
	ErrRegisterMetrics = errors.New("xdict: register metrics failed")
)
