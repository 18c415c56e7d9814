package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xvalue/pkg/schema/xipv4"
	"github.com/omeyang/xvalue/pkg/schema/xtype"
	"github.com/omeyang/xvalue/pkg/util/xdict"
	"github.com/omeyang/xvalue/pkg/util/xnet"
)

// exitError 表示命令已完成输出，只需以 code 退出。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// onUsageError 把框架的 flag 解析错误统一为 usageError。
func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{msg: err.Error()}
}

// 创建所有子命令。
func createCommands(e *env) []*cli.Command {
	return []*cli.Command{
		createStoreCommand(e),
		createCompareCommand(e),
		createHashCommand(e),
		createInspectCommand(e),
		createWatchCommand(e),
		createBatchCommand(e),
	}
}

func createStoreCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "store",
		Aliases:   []string{"s"},
		Usage:     "存储值并输出规范文本与二进制形式",
		ArgsUsage: "<value>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "输入格式 (text/binary)",
				Value:   xtype.FormatText.String(),
			},
			&cli.BoolFlag{
				Name:    "hex",
				Aliases: []string{"x"},
				Usage:   "输入为十六进制编码",
			},
			&cli.StringFlag{
				Name:  "types",
				Usage: "类型定义文件（YAML 或 JSON）",
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "使用 --types 中定义的类型",
			},
		},
		OnUsageError: onUsageError,
		Action: func(_ context.Context, cmd *cli.Command) error {
			arg, err := exactArgs(cmd, 1)
			if err != nil {
				return err
			}
			format, err := xtype.ParseFormat(cmd.String("format"))
			if err != nil {
				return &usageError{msg: err.Error()}
			}
			typ, err := e.loadType(cmd.String("types"), cmd.String("type"))
			if err != nil {
				return err
			}
			return cmdStore(e, cmd.Root().Writer, typ, format, cmd.Bool("hex"), arg[0])
		},
	}
}

func createCompareCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:         "compare",
		Aliases:      []string{"c"},
		Usage:        "比较两个文本值，相等时退出码 0，否则 1",
		ArgsUsage:    "<a> <b>",
		OnUsageError: onUsageError,
		Action: func(_ context.Context, cmd *cli.Command) error {
			args, err := exactArgs(cmd, 2)
			if err != nil {
				return err
			}
			return cmdCompare(e, cmd.Root().Writer, args[0], args[1])
		},
	}
}

func createHashCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:         "hash",
		Usage:        "输出哈希键（十六进制）与 xxhash 摘要",
		ArgsUsage:    "<value>",
		OnUsageError: onUsageError,
		Action: func(_ context.Context, cmd *cli.Command) error {
			args, err := exactArgs(cmd, 1)
			if err != nil {
				return err
			}
			return cmdHash(e, cmd.Root().Writer, args[0])
		},
	}
}

func createInspectCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:         "inspect",
		Aliases:      []string{"i"},
		Usage:        "输出地址、zone、uint32 与定宽形式",
		ArgsUsage:    "<value>",
		OnUsageError: onUsageError,
		Action: func(_ context.Context, cmd *cli.Command) error {
			args, err := exactArgs(cmd, 1)
			if err != nil {
				return err
			}
			return cmdInspect(e, cmd.Root().Writer, args[0])
		},
	}
}

func createWatchCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "监视类型定义文件，变更时重载并输出类型列表，直到被中断",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "types",
				Usage: "类型定义文件（YAML 或 JSON，必需）",
			},
			&cli.DurationFlag{
				Name:  "debounce",
				Usage: "防抖时间",
				Value: 100 * time.Millisecond,
			},
		},
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := exactArgs(cmd, 0); err != nil {
				return err
			}
			if cmd.String("types") == "" {
				return &usageError{msg: "watch 需要指定 --types"}
			}
			return cmdWatch(ctx, e, cmd.Root().Writer, cmd.String("types"), cmd.Duration("debounce"))
		},
	}
}

// exactArgs 要求恰好 n 个位置参数。
func exactArgs(cmd *cli.Command, n int) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) != n {
		return nil, &usageError{msg: fmt.Sprintf("%s 需要 %d 个参数，实际 %d 个", cmd.Name, n, len(args))}
	}
	return args, nil
}

// storeText 以文本形式存储 s。
func (e *env) storeText(s string) (*xipv4.Value, error) {
	return e.codec.Store(defaultType, xtype.TextInput(s))
}

func cmdStore(e *env, w io.Writer, typ *xtype.Type, format xtype.Format, isHex bool, arg string) error {
	data := []byte(arg)
	if isHex {
		b, err := hex.DecodeString(arg)
		if err != nil {
			return &usageError{msg: fmt.Sprintf("无效的十六进制输入: %v", err)}
		}
		data = b
	}

	// 缓冲区所有权交给编解码器，文本输入零拷贝成为规范值。
	in := xtype.Input{Owned: xdict.Own(data), Format: format}
	if format == xtype.FormatText {
		in.Hints = xtype.HintString
	}
	v, err := e.codec.Store(typ, in)
	if err != nil {
		return err
	}
	defer e.codec.Free(v)

	text, err := e.codec.Print(v, xtype.FormatText)
	if err != nil {
		return err
	}
	bin, err := e.codec.Print(v, xtype.FormatBinary)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "type:   %s\n", typ.Name)
	fmt.Fprintf(w, "text:   %s\n", text.Data)
	fmt.Fprintf(w, "binary: %s\n", hex.EncodeToString(bin.Data))
	return nil
}

func cmdWatch(ctx context.Context, e *env, w io.Writer, path string, debounce time.Duration) error {
	reg, err := xtype.NewRegistry(path)
	if err != nil {
		return err
	}
	var mu sync.Mutex
	printf := func(format string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(w, format, args...)
	}

	watcher, err := xtype.Watch(reg, func(r *xtype.Registry, err error) {
		if err != nil {
			e.logger.Warn("xvaluectl: reload failed", "path", r.Path(), "error", err)
			printf("reload failed: %v\n", err)
			return
		}
		printf("reloaded: %s\n", strings.Join(r.Names(), ", "))
	}, xtype.WithDebounce(debounce))
	if err != nil {
		return err
	}
	watcher.StartAsync()
	printf("loaded: %s\n", strings.Join(reg.Names(), ", "))

	<-ctx.Done()
	return watcher.Stop()
}

func cmdCompare(e *env, w io.Writer, a, b string) error {
	va, err := e.storeText(a)
	if err != nil {
		return err
	}
	defer e.codec.Free(va)
	vb, err := e.storeText(b)
	if err != nil {
		return err
	}
	defer e.codec.Free(vb)

	if !e.codec.Compare(va, vb) {
		fmt.Fprintln(w, "not equal")
		return &exitError{code: 1}
	}
	fmt.Fprintln(w, "equal")
	return nil
}

func cmdHash(e *env, w io.Writer, arg string) error {
	v, err := e.storeText(arg)
	if err != nil {
		return err
	}
	defer e.codec.Free(v)

	key, err := e.codec.Hash(v)
	if err != nil {
		return err
	}
	sum, err := e.codec.Sum64(v)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "key:    %s\n", hex.EncodeToString(key.Data))
	fmt.Fprintf(w, "xxhash: %016x\n", sum)
	return nil
}

func cmdInspect(e *env, w io.Writer, arg string) error {
	v, err := e.storeText(arg)
	if err != nil {
		return err
	}
	defer e.codec.Free(v)

	a, _ := xnet.IPv4Of(v.Addr())
	fmt.Fprintf(w, "address: %s\n", xnet.FormatIPv4(a))
	switch zone, ok := v.Zone(); {
	case !ok:
		fmt.Fprintln(w, "zone:    (none)")
	case zone == "":
		fmt.Fprintln(w, "zone:    (empty)")
	default:
		fmt.Fprintf(w, "zone:    %s\n", zone)
	}
	fmt.Fprintf(w, "uint32:  %d\n", xnet.Uint32FromIPv4(a))
	fmt.Fprintf(w, "full:    %s\n", xnet.FormatFullIPv4(a))
	return nil
}
