package xpool

import "log/slog"

// Option 配置 Pool。
type Option func(*options)

type options struct {
	logger *slog.Logger
	name   string
}

func defaultOptions() options {
	return options{logger: slog.Default()}
}

// WithLogger 设置 panic 恢复日志使用的记录器，nil 被忽略。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName 设置 pool 名称，出现在日志的 pool 字段。
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
