// Package xpool 提供泛型 worker pool，用于把一批独立任务分发到固定数量的 goroutine。
//
// 特性：
//   - 可配置的 worker 数量（[1, 65536]）和队列大小（[1, 16777216]）
//   - Submit 非阻塞，队列满时返回 ErrQueueFull
//   - SubmitWait 阻塞直到入队或 ctx 结束，适合不可丢弃的批处理
//   - 优雅关闭：Close 处理完队列中的任务后返回
//   - Shutdown(ctx) 超时返回后可通过 Done() 等待残留 worker
//   - panic 恢复：单个任务失败不影响 pool，日志仅记录 task 类型
//
// # 注意事项
//
//   - New 创建后自动启动 worker
//   - Close/Shutdown 不可在 handler 内调用，否则会死锁
//   - panic 的任务不会被重试
package xpool
