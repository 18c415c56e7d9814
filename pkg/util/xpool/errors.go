package xpool

import "errors"

// New 的参数错误。
var (
	ErrNilHandler       = errors.New("xpool: nil handler")
	ErrInvalidWorkers   = errors.New("xpool: worker count out of range")
	ErrInvalidQueueSize = errors.New("xpool: queue size out of range")
)

// 提交与关闭错误。
var (
	// ErrPoolStopped 表示 pool 已开始关闭。
	ErrPoolStopped = errors.New("xpool: pool stopped")
	// ErrQueueFull 表示 Submit 时队列没有空位。
	ErrQueueFull = errors.New("xpool: queue full")

	ErrNilContext = errors.New("xpool: nil context")
)
