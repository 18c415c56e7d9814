// Package xlog 构建 [slog.Logger]：级别、text/json 格式，以及可选的按大小轮转文件输出。
//
// 用法:
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation("/var/log/xvaluectl.log", xlog.WithMaxSizeMB(50)).
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
// Builder 记录第一个配置错误，在 Build 时返回。
package xlog
