package xdict

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
)

const (
	defaultShardCount = 32
	maxShardCount     = 1 << 16 // 65536
)

// Option 定义 Dict 可选配置。
type Option func(*options)

type options struct {
	maxEntries    int
	shardCount    int
	shardMask     uint64 // validate() 计算，供 getShard 使用
	logger        *slog.Logger
	meterProvider metric.MeterProvider
}

func defaultOptions() options {
	return options{
		shardCount: defaultShardCount,
		logger:     slog.Default(),
	}
}

// WithMaxEntries 设置最大条目数。
// 达到上限时插入新内容返回 [ErrCapacity]，插入已有内容不受影响。
// n <= 0 表示不限制（默认）。
func WithMaxEntries(n int) Option {
	// 在闭包外归一化，避免闭包写捕获变量导致并发复用时的数据竞争。
	if n < 0 {
		n = 0
	}
	return func(o *options) {
		o.maxEntries = n
	}
}

// WithShardCount 设置分片数量。
// n 必须为正整数且为 2 的幂，上限 65536，否则 New 返回错误。默认 32。
func WithShardCount(n int) Option {
	return func(o *options) {
		o.shardCount = n
	}
}

// WithLogger 设置自定义日志记录器。
// 默认使用 slog.Default()。传入 nil 将被忽略，保持使用默认值。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMeterProvider 设置 OTel MeterProvider，用于注册条目数与引用数 Gauge。
// 默认不注册任何指标。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = provider
	}
}

func (o *options) validate() error {
	sc := o.shardCount
	if sc <= 0 || sc > maxShardCount || sc&(sc-1) != 0 {
		return fmt.Errorf("%w: must be a positive power of 2 (max %d), got %d",
			ErrInvalidShardCount, maxShardCount, sc)
	}
	// sc ∈ [1, maxShardCount] 且为 2 的幂，int→uint64 转换安全。
	o.shardMask = uint64(sc - 1)
	return nil
}
