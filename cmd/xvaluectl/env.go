package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xvalue/pkg/observability/xlog"
	"github.com/omeyang/xvalue/pkg/schema/xipv4"
	"github.com/omeyang/xvalue/pkg/schema/xtype"
	"github.com/omeyang/xvalue/pkg/util/xdict"
)

// defaultType 是未指定 --types 时使用的无约束类型。
var defaultType = &xtype.Type{Name: "ipv4-address"}

// env 是一次命令执行共享的字典、编解码器与日志。
type env struct {
	logger     *slog.Logger
	logCleanup func() error
	dict       xdict.Dict
	codec      *xipv4.Codec
}

// setup 按全局 flag 构建日志并创建字典与编解码器。
func (e *env) setup(cmd *cli.Command, stderr io.Writer) error {
	b := xlog.New().
		SetOutput(stderr).
		SetLevelString(cmd.String("log-level")).
		SetFormat(cmd.String("log-format"))
	if file := cmd.String("log-file"); file != "" {
		b.SetRotation(file, xlog.WithMaxSizeMB(cmd.Int("log-max-size")))
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		if errors.Is(err, xlog.ErrUnknownLevel) || errors.Is(err, xlog.ErrUnknownFormat) ||
			errors.Is(err, xlog.ErrInvalidRotation) {
			return &usageError{msg: err.Error()}
		}
		return err
	}
	e.logger, e.logCleanup = logger, cleanup

	dict, err := xdict.New(xdict.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("create dictionary: %w", err)
	}
	codec, err := xipv4.New(dict, xipv4.WithLogger(logger))
	if err != nil {
		return errors.Join(fmt.Errorf("create codec: %w", err), dict.Close())
	}
	e.dict, e.codec = dict, codec
	return nil
}

// close 关闭字典与日志文件，并报告未释放的条目。
func (e *env) close() error {
	var errs []error
	if e.dict != nil {
		if n := e.dict.Len(); n != 0 {
			e.logger.Warn("xvaluectl: dictionary entries still referenced at exit", "entries", n)
		}
		errs = append(errs, e.dict.Close())
		e.dict = nil
	}
	if e.logCleanup != nil {
		errs = append(errs, e.logCleanup())
		e.logCleanup = nil
	}
	return errors.Join(errs...)
}

// loadType 从类型定义文件中选取 name 对应的类型。
// path 为空时返回无约束的默认类型。
func (e *env) loadType(path, name string) (*xtype.Type, error) {
	if path == "" {
		if name != "" {
			return nil, &usageError{msg: "--type 需要同时指定 --types"}
		}
		return defaultType, nil
	}
	reg, err := xtype.NewRegistry(path)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("xvaluectl: types loaded", "path", path, "types", reg.Names())
	if name == "" {
		return nil, &usageError{msg: "--types 需要同时指定 --type"}
	}
	typ, ok := reg.Lookup(name)
	if !ok {
		return nil, &usageError{msg: fmt.Sprintf("类型 %q 未在 %s 中定义 (可用: %s)",
			name, path, strings.Join(reg.Names(), ", "))}
	}
	return typ, nil
}
