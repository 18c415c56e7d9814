package xlog

import (
	"fmt"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 轮转默认值。
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 7
	DefaultMaxAgeDays = 30
)

// RotationOption 配置文件轮转。
type RotationOption func(*rotation)

type rotation struct {
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
	compress   bool
}

// WithMaxSizeMB 设置单个文件的大小上限（MB），必须大于 0。
func WithMaxSizeMB(n int) RotationOption {
	return func(r *rotation) { r.maxSizeMB = n }
}

// WithMaxBackups 设置保留的备份数量，0 表示不限制。
func WithMaxBackups(n int) RotationOption {
	return func(r *rotation) { r.maxBackups = n }
}

// WithMaxAgeDays 设置备份保留天数，0 表示不按天数清理。
func WithMaxAgeDays(n int) RotationOption {
	return func(r *rotation) { r.maxAgeDays = n }
}

// WithCompress 设置是否 gzip 压缩备份。
func WithCompress(enable bool) RotationOption {
	return func(r *rotation) { r.compress = enable }
}

func newRotator(filename string, opts ...RotationOption) (*lumberjack.Logger, error) {
	if filename == "" {
		return nil, fmt.Errorf("%w: empty filename", ErrInvalidRotation)
	}
	r := rotation{
		maxSizeMB:  DefaultMaxSizeMB,
		maxBackups: DefaultMaxBackups,
		maxAgeDays: DefaultMaxAgeDays,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&r)
		}
	}
	if r.maxSizeMB <= 0 || r.maxBackups < 0 || r.maxAgeDays < 0 {
		return nil, fmt.Errorf("%w: size=%dMB backups=%d age=%dd",
			ErrInvalidRotation, r.maxSizeMB, r.maxBackups, r.maxAgeDays)
	}
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    r.maxSizeMB,
		MaxBackups: r.maxBackups,
		MaxAge:     r.maxAgeDays,
		Compress:   r.compress,
	}, nil
}
